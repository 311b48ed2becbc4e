package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/internal/domain/repository"
)

// AddressService manages the address sequence embedded in the caller's own
// user document. Every operation is a read-modify-write of that one document;
// ids are matched against the stored address id, never a positional index.
type AddressService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
	Audit  *Auditor
}

func NewAddressService(repo repository.UserRepository, logger *logrus.Logger, audit *Auditor) *AddressService {
	return &AddressService{Repo: repo, Logger: logger, Audit: audit}
}

// AddressInput carries the full set of address fields. Unlike profile
// updates, address updates are full replacements: a payload missing any
// required field is rejected rather than merged.
type AddressInput struct {
	Type    string
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

func (in AddressInput) validate() error {
	if strings.TrimSpace(in.Street) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.State) == "" ||
		strings.TrimSpace(in.Zip) == "" ||
		strings.TrimSpace(in.Country) == "" {
		return validationErr("Street, city, state, zip, and country are required")
	}
	return nil
}

func (s *AddressService) List(ctx context.Context, userID string) ([]entity.Address, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u.Addresses, nil
}

// Add appends to the end of the sequence. No dedup, no sorting.
func (s *AddressService) Add(ctx context.Context, userID string, in AddressInput) (*entity.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	addr := entity.Address{
		ID:      uuid.NewString(),
		Type:    in.Type,
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Zip:     in.Zip,
		Country: in.Country,
	}
	if addr.Type == "" {
		addr.Type = "home"
	}
	u.Addresses = append(u.Addresses, addr)
	if err := s.Repo.Update(u); err != nil {
		return nil, mapRepoErr(err)
	}
	s.Audit.Record(ctx, "address_add", userID, map[string]any{"address_id": addr.ID})
	return &addr, nil
}

// Update replaces the identified address in place; its position in the
// sequence does not change. Only Type falls back to the stored value when
// omitted.
func (s *AddressService) Update(ctx context.Context, userID, addressID string, in AddressInput) (*entity.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	idx := indexOfAddress(u.Addresses, addressID)
	if idx < 0 {
		return nil, ErrAddressNotFound
	}
	addr := entity.Address{
		ID:      addressID,
		Type:    in.Type,
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Zip:     in.Zip,
		Country: in.Country,
	}
	if addr.Type == "" {
		addr.Type = u.Addresses[idx].Type
	}
	u.Addresses[idx] = addr
	if err := s.Repo.Update(u); err != nil {
		return nil, mapRepoErr(err)
	}
	s.Audit.Record(ctx, "address_update", userID, map[string]any{"address_id": addressID})
	return &addr, nil
}

// Delete removes the identified address; later entries shift down by one.
func (s *AddressService) Delete(ctx context.Context, userID, addressID string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	idx := indexOfAddress(u.Addresses, addressID)
	if idx < 0 {
		return ErrAddressNotFound
	}
	u.Addresses = append(u.Addresses[:idx], u.Addresses[idx+1:]...)
	if err := s.Repo.Update(u); err != nil {
		return mapRepoErr(err)
	}
	s.Audit.Record(ctx, "address_delete", userID, map[string]any{"address_id": addressID})
	return nil
}

func indexOfAddress(addrs []entity.Address, id string) int {
	for i := range addrs {
		if addrs[i].ID == id {
			return i
		}
	}
	return -1
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
