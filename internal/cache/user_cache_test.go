package cache

import (
	"fmt"
	"testing"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCachePutGet(t *testing.T) {
	c := NewUserCache(4)

	c.Put(&models.User{ID: 1, Username: "alice"})

	user, ok := c.Get("alice")
	require.True(t, ok)
	assert.Equal(t, uint(1), user.ID)

	_, ok = c.Get("bob")
	assert.False(t, ok)
}

func TestUserCacheInvalidate(t *testing.T) {
	c := NewUserCache(4)
	c.Put(&models.User{ID: 1, Username: "alice"})

	c.Invalidate("alice")

	_, ok := c.Get("alice")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestUserCacheStaysBounded(t *testing.T) {
	c := NewUserCache(8)

	for i := 0; i < 100; i++ {
		c.Put(&models.User{ID: uint(i), Username: fmt.Sprintf("user-%d", i)})
	}

	assert.LessOrEqual(t, c.Len(), 8)
}

func TestUserCacheUpdateDoesNotEvict(t *testing.T) {
	c := NewUserCache(2)
	c.Put(&models.User{ID: 1, Username: "alice"})
	c.Put(&models.User{ID: 2, Username: "bob"})

	// Overwriting an existing entry must not push anything out.
	c.Put(&models.User{ID: 1, Username: "alice", Email: "alice@example.com"})

	assert.Equal(t, 2, c.Len())
	user, ok := c.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserCacheZeroCapacityFallsBack(t *testing.T) {
	c := NewUserCache(0)
	c.Put(&models.User{ID: 1, Username: "alice"})

	_, ok := c.Get("alice")
	assert.True(t, ok)
}
