package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/internal/domain/repository"
	"github.com/pureherbal/storefront-api/pkg/helpers"
)

const minPasswordLen = 6

// AccountService owns registration, login, profile reads/updates, and
// password changes for the authenticated shopper.
type AccountService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
	Audit     *Auditor
}

func NewAccountService(repo repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, audit *Auditor) *AccountService {
	return &AccountService{
		Repo:      repo,
		JWT:       jwt,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
		Audit:     audit,
	}
}

// NormalizeEmail is the single place the login identifier is canonicalized.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user and issues a token so the client is logged in
// immediately after signing up.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", validationErr("Name is required")
	}
	if len(password) < minPasswordLen {
		return nil, "", ErrPasswordTooShort
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Preferences:  map[string]any{},
		Addresses:    []entity.Address{},
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	s.Audit.Record(ctx, "register", u.ID, map[string]any{"email": u.Email})
	return u, token, nil
}

// Login verifies the credentials and mints a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(NormalizeEmail(email))
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	s.Audit.Record(ctx, "login", u.ID, map[string]any{"email": u.Email})
	return u, token, nil
}

func (s *AccountService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ProfileUpdateInput uses pointers for the optional fields so a field must be
// explicitly present in the payload to change; absent never means "clear it".
type ProfileUpdateInput struct {
	Name        string
	Phone       *string
	AvatarURL   *string
	Preferences map[string]any
}

// UpdateProfile applies a partial update. Only Name is required; every other
// field keeps its stored value unless supplied.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("Name is required")
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	u.Name = name
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if in.Preferences != nil {
		u.Preferences = in.Preferences
	}
	if err := s.Repo.Update(u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.Audit.Record(ctx, "profile_update", u.ID, nil)
	return u, nil
}

// ChangePassword verifies the current password before storing the new hash.
// The raw passwords are discarded as soon as the hash is derived.
func (s *AccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(u.ID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Audit.Record(ctx, "password_change", u.ID, nil)
	return nil
}

// UploadAvatar stores the image in GCS and records its public URL on the profile.
func (s *AccountService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (*entity.User, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, id+ext))

	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	url, err := helpers.UploadObject(c, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	s.Audit.Record(ctx, "avatar_upload", u.ID, map[string]any{"object": objectPath})
	return u, nil
}
