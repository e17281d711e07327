package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeFixture() (*fakeLikeStore, *LikeService) {
	store := newFakeLikeStore()
	store.addUser(models.User{ID: 1, Username: "alice"})
	store.addUser(models.User{ID: 2, Username: "bob"})
	store.addRecipe(models.Recipe{ID: 5, UserID: 1, Name: "Pancakes", Status: models.RecipeStatusPublic, IsPublic: true})
	return store, NewLikeService(store)
}

func TestToggleLikeOscillates(t *testing.T) {
	store, svc := newLikeFixture()
	ctx := context.Background()

	liked, count, err := svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), store.cachedLikeCount(5))

	liked, count, err = svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, int64(0), store.cachedLikeCount(5))

	liked, count, err = svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeRecipeNotFound(t *testing.T) {
	_, svc := newLikeFixture()

	_, _, err := svc.ToggleLike(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestToggleLikeNotifiesOwner(t *testing.T) {
	store, svc := newLikeFixture()
	ctx := context.Background()

	_, _, err := svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)
	require.Equal(t, 1, store.notificationCount())

	n := store.lastNotification()
	assert.Equal(t, uint(1), n.ReceiverID)
	require.NotNil(t, n.SenderID)
	assert.Equal(t, uint(2), *n.SenderID)
	assert.Equal(t, models.NotificationTypeLike, n.Type)
	assert.Equal(t, "bob liked your recipe 'Pancakes'.", n.Message)
	require.NotNil(t, n.RecipeID)
	assert.Equal(t, uint(5), *n.RecipeID)

	// Unlike never removes the notification.
	_, _, err = svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, store.notificationCount())
}

func TestToggleLikeSelfLikeSkipsNotification(t *testing.T) {
	store, svc := newLikeFixture()

	liked, count, err := svc.ToggleLike(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 0, store.notificationCount())
}

func TestToggleLikeUnknownLikerFallsBackToSomeone(t *testing.T) {
	store := newFakeLikeStore()
	store.addUser(models.User{ID: 1, Username: "alice"})
	store.addRecipe(models.Recipe{ID: 5, UserID: 1, Name: "Pancakes", IsPublic: true})
	svc := NewLikeService(store)

	_, _, err := svc.ToggleLike(context.Background(), 5, 42)
	require.NoError(t, err)
	require.Equal(t, 1, store.notificationCount())
	assert.Equal(t, "Someone liked your recipe 'Pancakes'.", store.lastNotification().Message)
}

func TestToggleLikeNotificationFailureDoesNotUndoLike(t *testing.T) {
	store, svc := newLikeFixture()
	store.state.notificationErr = errors.New("notifications down")

	liked, count, err := svc.ToggleLike(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), store.recipeLikeCount(5))
	assert.Equal(t, 0, store.notificationCount())
}

func TestToggleLikeLostInsertRaceSettlesAsLiked(t *testing.T) {
	store, svc := newLikeFixture()
	store.state.forceRecipeLikeExists = true

	liked, count, err := svc.ToggleLike(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), store.cachedLikeCount(5))
	// The losing toggle must not double-insert or notify.
	assert.Equal(t, int64(1), store.recipeLikeCount(5))
	assert.Equal(t, 0, store.notificationCount())
}

func TestToggleLikeConcurrentTogglesKeepCountConsistent(t *testing.T) {
	store, svc := newLikeFixture()
	for i := uint(10); i < 20; i++ {
		store.addUser(models.User{ID: i})
	}

	var wg sync.WaitGroup
	for i := uint(10); i < 20; i++ {
		for j := 0; j < 5; j++ {
			wg.Add(1)
			go func(userID uint) {
				defer wg.Done()
				_, _, err := svc.ToggleLike(context.Background(), 5, userID)
				assert.NoError(t, err)
			}(i)
		}
	}
	wg.Wait()

	// Whatever the interleaving, the cached count must equal the rows.
	rows := store.recipeLikeCount(5)
	assert.Equal(t, rows, store.cachedLikeCount(5))

	// Each user toggled 5 times, so each ends up liked.
	for i := uint(10); i < 20; i++ {
		liked, err := svc.HasLiked(context.Background(), 5, i)
		require.NoError(t, err)
		assert.True(t, liked)
	}
	assert.Equal(t, int64(10), rows)
}

func TestHasLikedRecipeNotFound(t *testing.T) {
	_, svc := newLikeFixture()

	_, err := svc.HasLiked(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecomputeLikeCountRepairsStaleCache(t *testing.T) {
	store, svc := newLikeFixture()
	ctx := context.Background()

	_, _, err := svc.ToggleLike(ctx, 5, 2)
	require.NoError(t, err)

	// Drift the cache, then recompute from the rows.
	store.state.recipes[5].LikeCount = 42

	count, err := svc.RecomputeLikeCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), store.cachedLikeCount(5))
}
