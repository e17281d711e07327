package repositories

import (
	"context"
	"errors"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// LikeInsertOutcome reports whether a like insert created a row or lost to
// an existing one. A unique-constraint violation is an expected outcome of
// the insert, not an error.
type LikeInsertOutcome int

const (
	LikeInserted LikeInsertOutcome = iota
	LikeAlreadyExists
)

// LikeStore is the persistence gateway for the like workflows. WithTx runs
// fn against a store bound to a single database transaction; every write of
// a toggle must go through it so that no concurrent toggle on the same pair
// observes an intermediate state.
type LikeStore interface {
	WithTx(ctx context.Context, fn func(LikeStore) error) error

	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)

	HasRecipeLike(ctx context.Context, recipeID, userID uint) (bool, error)
	InsertRecipeLike(ctx context.Context, like *models.RecipeLike) (LikeInsertOutcome, error)
	DeleteRecipeLike(ctx context.Context, recipeID, userID uint) error
	CountRecipeLikes(ctx context.Context, recipeID uint) (int64, error)
	SetRecipeLikeCount(ctx context.Context, recipeID uint, count int64) error

	HasNoteLike(ctx context.Context, noteID, userID uint) (bool, error)
	InsertNoteLike(ctx context.Context, like *models.NoteLike) (LikeInsertOutcome, error)
	DeleteNoteLike(ctx context.Context, noteID, userID uint) error
	CountNoteLikes(ctx context.Context, noteID uint) (int64, error)
	ListNoteLikes(ctx context.Context, noteID uint) ([]models.NoteLike, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)
	InsertNotification(ctx context.Context, notification *models.Notification) error
}

// GormLikeStore implements LikeStore on PostgreSQL. It relies on GORM error
// translation being enabled so duplicate-key inserts can be detected with
// gorm.ErrDuplicatedKey rather than by matching driver error strings.
type GormLikeStore struct {
	db *gorm.DB
}

// NewGormLikeStore creates a new GormLikeStore
func NewGormLikeStore(db *gorm.DB) *GormLikeStore {
	return &GormLikeStore{db: db}
}

func (s *GormLikeStore) WithTx(ctx context.Context, fn func(LikeStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormLikeStore{db: tx})
	})
}

func (s *GormLikeStore) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *GormLikeStore) HasRecipeLike(ctx context.Context, recipeID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormLikeStore) InsertRecipeLike(ctx context.Context, like *models.RecipeLike) (LikeInsertOutcome, error) {
	if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return LikeAlreadyExists, nil
		}
		return LikeAlreadyExists, err
	}
	return LikeInserted, nil
}

// DeleteRecipeLike deletes by the id pair without checking rows affected;
// deleting an absent row is a no-op for the toggle.
func (s *GormLikeStore) DeleteRecipeLike(ctx context.Context, recipeID, userID uint) error {
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.RecipeLike{}).Error
}

func (s *GormLikeStore) CountRecipeLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}

func (s *GormLikeStore) SetRecipeLikeCount(ctx context.Context, recipeID uint, count int64) error {
	return s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("like_count", count).Error
}

func (s *GormLikeStore) HasNoteLike(ctx context.Context, noteID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.NoteLike{}).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormLikeStore) InsertNoteLike(ctx context.Context, like *models.NoteLike) (LikeInsertOutcome, error) {
	if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return LikeAlreadyExists, nil
		}
		return LikeAlreadyExists, err
	}
	return LikeInserted, nil
}

func (s *GormLikeStore) DeleteNoteLike(ctx context.Context, noteID, userID uint) error {
	return s.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Delete(&models.NoteLike{}).Error
}

func (s *GormLikeStore) CountNoteLikes(ctx context.Context, noteID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.NoteLike{}).
		Where("note_id = ?", noteID).
		Count(&count).Error
	return count, err
}

func (s *GormLikeStore) ListNoteLikes(ctx context.Context, noteID uint) ([]models.NoteLike, error) {
	var likes []models.NoteLike
	err := s.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

func (s *GormLikeStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormLikeStore) InsertNotification(ctx context.Context, notification *models.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}
