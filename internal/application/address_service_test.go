package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/pkg/helpers"
)

func newAddressFixture(t *testing.T) (*AddressService, string) {
	t.Helper()
	repo := newMemRepo()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	accounts := NewAccountService(repo, &helpers.JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}, nil, "", logger, nil)
	u, _, err := accounts.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("register fixture user: %v", err)
	}
	return NewAddressService(repo, logger, nil), u.ID
}

func addr(street string) AddressInput {
	return AddressInput{Street: street, City: "Portland", State: "OR", Zip: "97201", Country: "USA"}
}

func TestAddAndListDefaultsType(t *testing.T) {
	svc, uid := newAddressFixture(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, uid, AddressInput{Street: "1 Rd", City: "X", State: "Y", Zip: "000", Country: "Z"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Type != "home" {
		t.Fatalf("type not defaulted: %q", added.Type)
	}
	if added.ID == "" {
		t.Fatal("address id not assigned")
	}

	list, err := svc.List(ctx, uid)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Street != "1 Rd" || list[0].Type != "home" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestAddMissingFieldRejected(t *testing.T) {
	svc, uid := newAddressFixture(t)
	ctx := context.Background()

	in := addr("1 Rd")
	in.City = " "
	_, err := svc.Add(ctx, uid, in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	list, _ := svc.List(ctx, uid)
	if len(list) != 0 {
		t.Fatalf("list grew on rejected add: %d entries", len(list))
	}
}

func TestUpdatePreservesPosition(t *testing.T) {
	svc, uid := newAddressFixture(t)
	ctx := context.Background()

	for _, street := range []string{"1 First St", "2 Second St", "3 Third St"} {
		if _, err := svc.Add(ctx, uid, addr(street)); err != nil {
			t.Fatalf("add %s: %v", street, err)
		}
	}
	list, _ := svc.List(ctx, uid)
	middle := list[1]

	in := addr("2B Second St")
	in.Type = "work"
	updated, err := svc.Update(ctx, uid, middle.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != "work" || updated.Street != "2B Second St" {
		t.Fatalf("update not applied: %+v", updated)
	}

	after, _ := svc.List(ctx, uid)
	if len(after) != 3 {
		t.Fatalf("list length changed: %d", len(after))
	}
	if after[1].ID != middle.ID || after[1].Street != "2B Second St" {
		t.Fatalf("updated entry moved or lost: %+v", after)
	}
	if after[0].Street != "1 First St" || after[2].Street != "3 Third St" {
		t.Fatalf("neighbors were touched: %+v", after)
	}
}

func TestUpdateTypeFallsBackToStored(t *testing.T) {
	svc, uid := newAddressFixture(t)
	ctx := context.Background()

	in := addr("1 First St")
	in.Type = "work"
	added, err := svc.Add(ctx, uid, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Omitting type keeps the stored classification.
	updated, err := svc.Update(ctx, uid, added.ID, addr("1 First St, Apt 2"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != "work" {
		t.Fatalf("omitted type did not fall back: %q", updated.Type)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc, uid := newAddressFixture(t)

	_, err := svc.Update(context.Background(), uid, "missing-id", addr("1 Rd"))
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("want ErrAddressNotFound, got %v", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	svc, uid := newAddressFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, uid, addr("1 First St"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, uid, addr("2 Second St")); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Delete(ctx, uid, first.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	list, _ := svc.List(ctx, uid)
	if len(list) != 1 || list[0].Street != "2 Second St" {
		t.Fatalf("later entry did not shift down: %+v", list)
	}

	if err := svc.Delete(ctx, uid, first.ID); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("second delete: want ErrAddressNotFound, got %v", err)
	}
}
