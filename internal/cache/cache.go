package cache

import (
	"container/list"
	"sync"

	"github.com/therealfuntimeswithdanny/notes-app/internal/models"
)

const MaxCacheSize = 150

type cacheEntry struct {
	username string
	notes    []models.Note
}

// Cache holds decoded note lists keyed by username, evicting the least
// recently used entry once full.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]*list.Element
	order   *list.List
	maxSize int
}

func New() *Cache {
	return &Cache{
		items:   make(map[string]*list.Element),
		order:   list.New(),
		maxSize: MaxCacheSize,
	}
}

// Get returns a copy of the cached list; mutating it cannot corrupt the
// cached snapshot.
func (c *Cache) Get(username string) ([]models.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if elem, ok := c.items[username]; ok {
		entry := elem.Value.(*cacheEntry)
		return snapshot(entry.notes), true
	}
	return nil, false
}

func (c *Cache) Set(username string, notes []models.Note) {
	notes = snapshot(notes)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[username]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.notes = notes
		return
	}

	if c.order.Len() >= c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			entry := oldest.Value.(*cacheEntry)
			delete(c.items, entry.username)
			c.order.Remove(oldest)
		}
	}

	entry := &cacheEntry{
		username: username,
		notes:    notes,
	}
	elem := c.order.PushFront(entry)
	c.items[username] = elem
}

func (c *Cache) Invalidate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[username]; ok {
		delete(c.items, username)
		c.order.Remove(elem)
	}
}

// snapshot copies the list, keeping an empty slice distinct from nil so a
// cached empty list still encodes as a JSON array.
func snapshot(notes []models.Note) []models.Note {
	if notes == nil {
		return nil
	}
	copied := make([]models.Note, len(notes))
	copy(copied, notes)
	return copied
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order = list.New()
}
