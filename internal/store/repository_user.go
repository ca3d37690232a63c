package store

import (
	"errors"

	"github.com/KashifaTajreen/Fitness/internal/auth"
)

// FileUserRepository implements auth.UserRepository over the shared state
// file.
type FileUserRepository struct {
	store *FileStore
}

func NewFileUserRepository(store *FileStore) *FileUserRepository {
	return &FileUserRepository{store: store}
}

func (r *FileUserRepository) Save(user *auth.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensureUser(user.Username)
	rec.PasswordHash = user.PasswordHash
	rec.Remember = user.Remember

	s.persist()
	return nil
}

func (r *FileUserRepository) ExistsByUsername(username string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.state.Users[username]
	return exists, nil
}

func (r *FileUserRepository) FindByUsername(username string) (*auth.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.state.Users[username]
	if !ok {
		return nil, errors.New("user not found")
	}

	return &auth.User{
		Username:     username,
		PasswordHash: rec.PasswordHash,
		Remember:     rec.Remember,
	}, nil
}
