package services

import (
	"context"
	"testing"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteLikeFixture() (*fakeLikeStore, *NoteLikeService) {
	store := newFakeLikeStore()
	store.addUser(models.User{ID: 1, Username: "alice"})
	store.addUser(models.User{ID: 2, Username: "bob"})
	store.addRecipe(models.Recipe{ID: 7, UserID: 1, Name: "Ramen", Status: models.RecipeStatusPublic, IsPublic: true})
	store.addRecipe(models.Recipe{ID: 8, UserID: 1, Name: "Secret Sauce", Status: models.RecipeStatusDraft, IsPublic: false})
	return store, NewNoteLikeService(store)
}

func TestNoteLikeAndUnlike(t *testing.T) {
	store, svc := newNoteLikeFixture()
	ctx := context.Background()

	count, err := svc.Like(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err := svc.HasLiked(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err = svc.Unlike(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	liked, err = svc.HasLiked(ctx, 7, 2)
	require.NoError(t, err)
	assert.False(t, liked)

	// The like notification survives the unlike.
	assert.Equal(t, 1, store.notificationCount())
}

func TestNoteLikeTwiceIsAnError(t *testing.T) {
	_, svc := newNoteLikeFixture()
	ctx := context.Background()

	_, err := svc.Like(ctx, 7, 2)
	require.NoError(t, err)

	_, err = svc.Like(ctx, 7, 2)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	count, err := svc.LikeCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNoteUnlikeWithoutLikeIsAnError(t *testing.T) {
	_, svc := newNoteLikeFixture()

	_, err := svc.Unlike(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrNotLiked)
}

func TestNoteLikePrivateNoteRejected(t *testing.T) {
	store, svc := newNoteLikeFixture()

	_, err := svc.Like(context.Background(), 8, 2)
	assert.ErrorIs(t, err, ErrNotePrivate)
	assert.Equal(t, 0, store.notificationCount())
}

func TestNoteLikeNotFound(t *testing.T) {
	_, svc := newNoteLikeFixture()

	_, err := svc.Like(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = svc.LikeCount(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteLikeNotifiesOwner(t *testing.T) {
	store, svc := newNoteLikeFixture()

	_, err := svc.Like(context.Background(), 7, 2)
	require.NoError(t, err)
	require.Equal(t, 1, store.notificationCount())

	n := store.lastNotification()
	assert.Equal(t, uint(1), n.ReceiverID)
	assert.Equal(t, "bob liked the note on your recipe 'Ramen'.", n.Message)
}

func TestNoteLikeSelfLikeSkipsNotification(t *testing.T) {
	store, svc := newNoteLikeFixture()

	count, err := svc.Like(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 0, store.notificationCount())
}

func TestNoteLikesList(t *testing.T) {
	_, svc := newNoteLikeFixture()
	ctx := context.Background()

	_, err := svc.Like(ctx, 7, 1)
	require.NoError(t, err)
	_, err = svc.Like(ctx, 7, 2)
	require.NoError(t, err)

	likes, err := svc.Likes(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
