package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/therealfuntimeswithdanny/notes-app/internal/cache"
	"github.com/therealfuntimeswithdanny/notes-app/internal/kv"
	"github.com/therealfuntimeswithdanny/notes-app/internal/models"
)

var ErrEmptyText = errors.New("note text required")
var ErrEmptyID = errors.New("note id required")

const keyPrefix = "notes:"

// Service stores each user's notes as one ordered JSON blob. Every
// mutation reads the whole sequence, changes it in memory and writes it
// back. The cycle is serialized per username with an in-process mutex, so
// same-user mutations through one server cannot lose an update; the store
// write itself is still a blind overwrite, and several server processes
// sharing one store would race last-write-wins.
type Service struct {
	store kv.Store
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

func New(store kv.Store, c *cache.Cache) *Service {
	return &Service{
		store: store,
		cache: c,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (s *Service) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}

func (s *Service) load(username string) ([]models.Note, error) {
	data, err := s.store.Get(keyPrefix + username)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []models.Note{}, nil
		}
		return nil, err
	}

	var notes []models.Note
	if err := json.Unmarshal([]byte(data), &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes for %q: %w", username, err)
	}
	return notes, nil
}

func (s *Service) save(username string, notes []models.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes for %q: %w", username, err)
	}
	if err := s.store.Put(keyPrefix+username, string(data)); err != nil {
		return err
	}
	s.cache.Invalidate(username)
	return nil
}

// List returns the user's notes in insertion order, empty if there are none.
// The load-and-cache cycle runs under the per-user lock: repopulating the
// cache outside it could land a pre-mutation snapshot after the mutation's
// invalidation, hiding a committed write from every later List.
func (s *Service) List(username string) ([]models.Note, error) {
	if notes, ok := s.cache.Get(username); ok {
		return notes, nil
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	if notes, ok := s.cache.Get(username); ok {
		return notes, nil
	}

	notes, err := s.load(username)
	if err != nil {
		return nil, err
	}
	s.cache.Set(username, notes)
	return notes, nil
}

// Create appends a note to the end of the user's sequence and returns it.
// The id is the creation time in milliseconds; two notes created within
// the same millisecond receive the same id. That collision is a known
// limitation carried over from the system this replaces.
func (s *Service) Create(username, text string) (*models.Note, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	notes, err := s.load(username)
	if err != nil {
		return nil, err
	}

	note := models.Note{
		ID:   strconv.FormatInt(s.now().UnixMilli(), 10),
		Text: text,
	}
	notes = append(notes, note)

	if err := s.save(username, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

// Update replaces the text of the note with the given id, preserving
// order. An unknown id is a silent no-op: the sequence is written back
// unchanged and success is reported.
func (s *Service) Update(username, id, text string) error {
	if id == "" {
		return ErrEmptyID
	}
	if text == "" {
		return ErrEmptyText
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	notes, err := s.load(username)
	if err != nil {
		return err
	}

	for i := range notes {
		if notes[i].ID == id {
			notes[i].Text = text
		}
	}

	return s.save(username, notes)
}

// Delete removes the note with the given id. An unknown id is a silent no-op.
func (s *Service) Delete(username, id string) error {
	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	notes, err := s.load(username)
	if err != nil {
		return err
	}

	kept := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}

	return s.save(username, kept)
}
