package application

import (
	"github.com/google/uuid"

	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/internal/domain/repository"
)

// memRepo is an in-memory UserRepository. It clones on every read and write
// so tests observe only what was actually persisted, not shared pointers.
type memRepo struct {
	users map[string]*entity.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.Addresses = append([]entity.Address(nil), u.Addresses...)
	if u.Preferences != nil {
		cp.Preferences = make(map[string]any, len(u.Preferences))
		for k, v := range u.Preferences {
			cp.Preferences[k] = v
		}
	}
	return &cp
}

func (r *memRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *memRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *memRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *memRepo) UpdatePassword(id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

var _ repository.UserRepository = (*memRepo)(nil)
