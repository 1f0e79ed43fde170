package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/dygo/dykit/errors"
)

// DefaultRole is assigned to every newly created user.
const DefaultRole = "user"

// StoredUser is a user record as persisted by a UserStore.
type StoredUser struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Roles        []string
}

// CreateUserData is the input for creating a new user.
type CreateUserData struct {
	Email        string
	Name         string
	PasswordHash string
}

// UserStore is the capability set a user storage backend must provide.
// Implementations are swapped at construction time; the auth handlers are
// polymorphic over this interface. Backend failures should be surfaced as
// DATABASE_ERROR AppErrors.
type UserStore interface {
	// FindByEmail returns the user with the given email, or nil if absent.
	FindByEmail(ctx context.Context, email string) (*StoredUser, error)

	// FindByID returns the user with the given id, or nil if absent.
	FindByID(ctx context.Context, id string) (*StoredUser, error)

	// Create stores a new user, assigning an id and the default role set.
	Create(ctx context.Context, data CreateUserData) (*StoredUser, error)

	// UpdatePassword replaces the password hash for the given user.
	// Fails with NOT_FOUND if the id is unknown.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// InMemoryUserStore is a mutex-guarded map-backed UserStore.
//
// It is intended for development and testing only.
type InMemoryUserStore struct {
	mu    sync.Mutex
	users map[string]StoredUser
}

// NewInMemoryUserStore creates an empty in-memory user store.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[string]StoredUser),
	}
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (*StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (s *InMemoryUserStore) Create(_ context.Context, data CreateUserData) (*StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := StoredUser{
		ID:           uuid.New().String(),
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Roles:        []string{DefaultRole},
	}
	s.users[u.ID] = u
	return cloneUser(u), nil
}

func (s *InMemoryUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperrors.NotFound("User not found")
	}
	u.PasswordHash = passwordHash
	s.users[id] = u
	return nil
}

func (s *InMemoryUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// SetRoles replaces a user's role set. Test and development helper; real
// backends manage roles through their own administration paths.
func (s *InMemoryUserStore) SetRoles(id string, roles []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperrors.NotFound("User not found")
	}
	u.Roles = append([]string(nil), roles...)
	s.users[id] = u
	return nil
}

// Delete removes a user. Test and development helper.
func (s *InMemoryUserStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func cloneUser(u StoredUser) *StoredUser {
	u.Roles = append([]string(nil), u.Roles...)
	return &u
}
