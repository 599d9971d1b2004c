package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/therealfuntimeswithdanny/notes-app/internal/kv"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Service manages opaque session tokens. A token stays valid until it is
// explicitly revoked; there is no expiry.
type Service struct {
	store kv.Store
}

func New(store kv.Store) *Service {
	return &Service{store: store}
}

// Create binds a fresh random token to the username and returns the token.
func (s *Service) Create(username string) (string, error) {
	token := uuid.NewString()
	if err := s.store.Put(keyPrefix+token, username); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the username bound to the token.
func (s *Service) Resolve(token string) (string, error) {
	username, err := s.store.Get(keyPrefix + token)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return username, nil
}

// Revoke deletes the token binding. Revoking an unknown token is not an error.
func (s *Service) Revoke(token string) error {
	return s.store.Delete(keyPrefix + token)
}
