package identity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/therealfuntimeswithdanny/notes-app/internal/kv"
	"github.com/therealfuntimeswithdanny/notes-app/internal/models"
)

var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

const keyPrefix = "user:"

// Service manages username to credential records. Passwords are stored
// and compared as plain text, matching the system this replaces.
type Service struct {
	store kv.Store
}

func New(store kv.Store) *Service {
	return &Service{store: store}
}

// Create persists a new user record. Concurrent signups for the same
// username can both pass the existence check; both then write identical
// content to the same key, so the race is benign.
func (s *Service) Create(username, password string) error {
	if _, err := s.store.Get(keyPrefix + username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, kv.ErrNotFound) {
		return err
	}

	data, err := json.Marshal(models.User{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.store.Put(keyPrefix+username, string(data))
}

// Verify returns the matching user on exact credential match. An unknown
// username and a wrong password both report ErrInvalidCredentials so the
// caller cannot tell which check failed.
func (s *Service) Verify(username, password string) (*models.User, error) {
	data, err := s.store.Get(keyPrefix + username)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user %q: %w", username, err)
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
