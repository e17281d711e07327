package cache

import (
	"sync"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
)

const defaultCapacity = 256

// UserCache is a small bounded username lookup cache used on the login
// path. When full, an arbitrary entry is evicted; the cache is a lookup
// shortcut, not a source of truth, so eviction order does not matter.
type UserCache struct {
	mu       sync.RWMutex
	capacity int
	users    map[string]*models.User
}

// NewUserCache creates a cache holding at most capacity users. A capacity
// of zero or less falls back to the default.
func NewUserCache(capacity int) *UserCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &UserCache{
		capacity: capacity,
		users:    make(map[string]*models.User, capacity),
	}
}

// Get returns the cached user for the username, if present
func (c *UserCache) Get(username string) (*models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.users[username]
	return user, ok
}

// Put stores a user, evicting an arbitrary entry when the cache is full
func (c *UserCache) Put(user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.users[user.Username]; !ok && len(c.users) >= c.capacity {
		for k := range c.users {
			delete(c.users, k)
			break
		}
	}
	c.users[user.Username] = user
}

// Invalidate drops the entry for the username, if present
func (c *UserCache) Invalidate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, username)
}

// Len reports the number of cached users
func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
