package services

import (
	"testing"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepo struct {
	notifications map[uint]*models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uint]*models.Notification)}
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.nextID++
	n.ID = f.nextID
	cp := *n
	f.notifications[n.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) GetByID(id uint) (*models.Notification, error) {
	n, ok := f.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotificationRepo) GetByReceiverID(receiverID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) GetUnreadByReceiverID(receiverID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(receiverID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(id uint) error {
	if n, ok := f.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(receiverID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) Delete(id uint) error {
	delete(f.notifications, id)
	return nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) CreateUser(u *models.User) error { return nil }

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func newNotificationFixture(t *testing.T) (*fakeNotificationRepo, *NotificationService) {
	t.Helper()
	repo := newFakeNotificationRepo()
	users := &fakeUserRepo{users: map[uint]*models.User{
		2: {ID: 2, Username: "bob"},
	}}
	sender := uint(2)
	require.NoError(t, repo.Create(&models.Notification{ReceiverID: 1, SenderID: &sender, Type: models.NotificationTypeLike, Message: "bob liked your recipe 'Pancakes'."}))
	require.NoError(t, repo.Create(&models.Notification{ReceiverID: 1, SenderID: &sender, Type: models.NotificationTypeLike, Message: "bob liked your recipe 'Ramen'."}))
	require.NoError(t, repo.Create(&models.Notification{ReceiverID: 3, Type: models.NotificationTypeLike, Message: "Someone liked your recipe 'Toast'."}))
	return repo, NewNotificationService(repo, users)
}

func TestNotificationListEnrichesSender(t *testing.T) {
	_, svc := newNotificationFixture(t)

	items, unread, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), unread)
	for _, item := range items {
		assert.Equal(t, "bob", item.SenderUsername)
	}

	// A notification without a sender keeps an empty username.
	items, unread, err = svc.List(3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), unread)
	assert.Empty(t, items[0].SenderUsername)
}

func TestNotificationMarkAsRead(t *testing.T) {
	repo, svc := newNotificationFixture(t)

	require.NoError(t, svc.MarkAsRead(1, 1))
	assert.True(t, repo.notifications[1].IsRead)

	unread, err := svc.UnreadCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestNotificationMarkAsReadGuardsReceiver(t *testing.T) {
	repo, svc := newNotificationFixture(t)

	err := svc.MarkAsRead(1, 3)
	assert.ErrorIs(t, err, ErrNotificationForbidden)
	assert.False(t, repo.notifications[1].IsRead)
}

func TestNotificationMarkAsReadNotFound(t *testing.T) {
	_, svc := newNotificationFixture(t)

	err := svc.MarkAsRead(99, 1)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationMarkAllAsRead(t *testing.T) {
	_, svc := newNotificationFixture(t)

	count, err := svc.MarkAllAsRead(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Already read, nothing left to flip.
	count, err = svc.MarkAllAsRead(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	unreadItems, err := svc.ListUnread(1)
	require.NoError(t, err)
	assert.Empty(t, unreadItems)
}

func TestNotificationDeleteGuardsReceiver(t *testing.T) {
	repo, svc := newNotificationFixture(t)

	err := svc.Delete(3, 1)
	assert.ErrorIs(t, err, ErrNotificationForbidden)

	require.NoError(t, svc.Delete(3, 3))
	_, ok := repo.notifications[3]
	assert.False(t, ok)
}
