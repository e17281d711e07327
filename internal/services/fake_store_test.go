package services

import (
	"context"
	"sync"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"gorm.io/gorm"
)

type likeKey struct {
	entityID uint
	userID   uint
}

// fakeState holds the in-memory tables and implements LikeStore without any
// locking. It is what WithTx hands to the transaction body.
type fakeState struct {
	recipes       map[uint]*models.Recipe
	users         map[uint]*models.User
	recipeLikes   map[likeKey]models.RecipeLike
	noteLikes     map[likeKey]models.NoteLike
	notifications []models.Notification

	// forceRecipeLikeExists makes the next InsertRecipeLike report a lost
	// race regardless of map state. The pair is recorded in phantomLike and
	// survives the rollback, standing in for the concurrent winner's
	// committed row.
	forceRecipeLikeExists bool
	phantomLike           *likeKey
	notificationErr       error
	nextLikeID            uint
}

// fakeLikeStore serializes access to fakeState with a mutex, which matches
// the row-level serialization the database gives conflicting toggles on the
// same pair.
type fakeLikeStore struct {
	mu    sync.Mutex
	state fakeState
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{state: fakeState{
		recipes:     make(map[uint]*models.Recipe),
		users:       make(map[uint]*models.User),
		recipeLikes: make(map[likeKey]models.RecipeLike),
		noteLikes:   make(map[likeKey]models.NoteLike),
	}}
}

func (f *fakeLikeStore) addRecipe(r models.Recipe) {
	f.state.recipes[r.ID] = &r
}

func (f *fakeLikeStore) addUser(u models.User) {
	f.state.users[u.ID] = &u
}

func (f *fakeLikeStore) WithTx(ctx context.Context, fn func(repositories.LikeStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := f.state.clone()
	if err := fn(&f.state); err != nil {
		phantom := f.state.phantomLike
		f.state = snapshot
		if phantom != nil {
			f.state.nextLikeID++
			f.state.recipeLikes[*phantom] = models.RecipeLike{
				ID:       f.state.nextLikeID,
				UserID:   phantom.userID,
				RecipeID: phantom.entityID,
			}
		}
		return err
	}
	return nil
}

func (f *fakeLikeStore) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.GetRecipe(ctx, id)
}

func (f *fakeLikeStore) HasRecipeLike(ctx context.Context, recipeID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.HasRecipeLike(ctx, recipeID, userID)
}

func (f *fakeLikeStore) InsertRecipeLike(ctx context.Context, like *models.RecipeLike) (repositories.LikeInsertOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.InsertRecipeLike(ctx, like)
}

func (f *fakeLikeStore) DeleteRecipeLike(ctx context.Context, recipeID, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.DeleteRecipeLike(ctx, recipeID, userID)
}

func (f *fakeLikeStore) CountRecipeLikes(ctx context.Context, recipeID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.CountRecipeLikes(ctx, recipeID)
}

func (f *fakeLikeStore) SetRecipeLikeCount(ctx context.Context, recipeID uint, count int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.SetRecipeLikeCount(ctx, recipeID, count)
}

func (f *fakeLikeStore) HasNoteLike(ctx context.Context, noteID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.HasNoteLike(ctx, noteID, userID)
}

func (f *fakeLikeStore) InsertNoteLike(ctx context.Context, like *models.NoteLike) (repositories.LikeInsertOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.InsertNoteLike(ctx, like)
}

func (f *fakeLikeStore) DeleteNoteLike(ctx context.Context, noteID, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.DeleteNoteLike(ctx, noteID, userID)
}

func (f *fakeLikeStore) CountNoteLikes(ctx context.Context, noteID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.CountNoteLikes(ctx, noteID)
}

func (f *fakeLikeStore) ListNoteLikes(ctx context.Context, noteID uint) ([]models.NoteLike, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.ListNoteLikes(ctx, noteID)
}

func (f *fakeLikeStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.GetUser(ctx, id)
}

func (f *fakeLikeStore) InsertNotification(ctx context.Context, notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.InsertNotification(ctx, notification)
}

func (f *fakeLikeStore) recipeLikeCount(recipeID uint) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, _ := f.state.CountRecipeLikes(context.Background(), recipeID)
	return n
}

func (f *fakeLikeStore) cachedLikeCount(recipeID uint) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.recipes[recipeID].LikeCount
}

func (f *fakeLikeStore) notificationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.state.notifications)
}

func (f *fakeLikeStore) lastNotification() models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.notifications[len(f.state.notifications)-1]
}

func (s *fakeState) clone() fakeState {
	// forceRecipeLikeExists is deliberately not carried into the snapshot:
	// it is a one-shot trigger and must stay consumed across a rollback.
	cp := fakeState{
		recipes:         make(map[uint]*models.Recipe, len(s.recipes)),
		users:           s.users,
		recipeLikes:     make(map[likeKey]models.RecipeLike, len(s.recipeLikes)),
		noteLikes:       make(map[likeKey]models.NoteLike, len(s.noteLikes)),
		notifications:   append([]models.Notification(nil), s.notifications...),
		notificationErr: s.notificationErr,
		nextLikeID:      s.nextLikeID,
	}
	for id, r := range s.recipes {
		c := *r
		cp.recipes[id] = &c
	}
	for k, v := range s.recipeLikes {
		cp.recipeLikes[k] = v
	}
	for k, v := range s.noteLikes {
		cp.noteLikes[k] = v
	}
	return cp
}

func (s *fakeState) WithTx(ctx context.Context, fn func(repositories.LikeStore) error) error {
	return fn(s)
}

func (s *fakeState) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeState) HasRecipeLike(ctx context.Context, recipeID, userID uint) (bool, error) {
	_, ok := s.recipeLikes[likeKey{recipeID, userID}]
	return ok, nil
}

func (s *fakeState) InsertRecipeLike(ctx context.Context, like *models.RecipeLike) (repositories.LikeInsertOutcome, error) {
	key := likeKey{like.RecipeID, like.UserID}
	if s.forceRecipeLikeExists {
		s.forceRecipeLikeExists = false
		s.phantomLike = &key
		return repositories.LikeAlreadyExists, nil
	}
	if _, ok := s.recipeLikes[key]; ok {
		return repositories.LikeAlreadyExists, nil
	}
	s.nextLikeID++
	like.ID = s.nextLikeID
	s.recipeLikes[key] = *like
	return repositories.LikeInserted, nil
}

func (s *fakeState) DeleteRecipeLike(ctx context.Context, recipeID, userID uint) error {
	delete(s.recipeLikes, likeKey{recipeID, userID})
	return nil
}

func (s *fakeState) CountRecipeLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	for k := range s.recipeLikes {
		if k.entityID == recipeID {
			count++
		}
	}
	return count, nil
}

func (s *fakeState) SetRecipeLikeCount(ctx context.Context, recipeID uint, count int64) error {
	r, ok := s.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.LikeCount = count
	return nil
}

func (s *fakeState) HasNoteLike(ctx context.Context, noteID, userID uint) (bool, error) {
	_, ok := s.noteLikes[likeKey{noteID, userID}]
	return ok, nil
}

func (s *fakeState) InsertNoteLike(ctx context.Context, like *models.NoteLike) (repositories.LikeInsertOutcome, error) {
	key := likeKey{like.NoteID, like.UserID}
	if _, ok := s.noteLikes[key]; ok {
		return repositories.LikeAlreadyExists, nil
	}
	s.nextLikeID++
	like.ID = s.nextLikeID
	s.noteLikes[key] = *like
	return repositories.LikeInserted, nil
}

func (s *fakeState) DeleteNoteLike(ctx context.Context, noteID, userID uint) error {
	delete(s.noteLikes, likeKey{noteID, userID})
	return nil
}

func (s *fakeState) CountNoteLikes(ctx context.Context, noteID uint) (int64, error) {
	var count int64
	for k := range s.noteLikes {
		if k.entityID == noteID {
			count++
		}
	}
	return count, nil
}

func (s *fakeState) ListNoteLikes(ctx context.Context, noteID uint) ([]models.NoteLike, error) {
	var likes []models.NoteLike
	for k, v := range s.noteLikes {
		if k.entityID == noteID {
			likes = append(likes, v)
		}
	}
	return likes, nil
}

func (s *fakeState) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeState) InsertNotification(ctx context.Context, notification *models.Notification) error {
	if s.notificationErr != nil {
		return s.notificationErr
	}
	notification.ID = uint(len(s.notifications) + 1)
	s.notifications = append(s.notifications, *notification)
	return nil
}
