package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NoteLikeService implements explicit like/unlike on recipe notes. Unlike
// the recipe toggle, liking twice is an error, and only public notes can be
// liked. Note like counts are derived from the rows on demand; there is no
// cached column to maintain.
type NoteLikeService struct {
	store repositories.LikeStore
}

// NewNoteLikeService creates a new NoteLikeService
func NewNoteLikeService(store repositories.LikeStore) *NoteLikeService {
	return &NoteLikeService{store: store}
}

// Like records that the user likes the note and returns the like count.
// Returns ErrAlreadyLiked when the pair already exists and ErrNotePrivate
// when the note is not public.
func (s *NoteLikeService) Like(ctx context.Context, noteID, userID uint) (int64, error) {
	var (
		count int64
		note  *models.Recipe
	)

	err := s.store.WithTx(ctx, func(tx repositories.LikeStore) error {
		n, err := tx.GetRecipe(ctx, noteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoteNotFound
			}
			return err
		}
		if !n.IsPublic {
			return ErrNotePrivate
		}
		note = n

		exists, err := tx.HasNoteLike(ctx, noteID, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyLiked
		}

		outcome, err := tx.InsertNoteLike(ctx, &models.NoteLike{UserID: userID, NoteID: noteID})
		if err != nil {
			return err
		}
		if outcome == repositories.LikeAlreadyExists {
			return ErrAlreadyLiked
		}

		count, err = tx.CountNoteLikes(ctx, noteID)
		return err
	})
	if err != nil {
		return 0, err
	}

	if note.UserID != userID {
		if nerr := s.emitNoteLikeNotification(ctx, note, userID); nerr != nil {
			logrus.WithError(nerr).WithFields(logrus.Fields{
				"noteId": noteID,
				"userId": userID,
			}).Warn("note like notification not created")
		}
	}

	return count, nil
}

// Unlike removes the user's like from the note and returns the like count.
// Returns ErrNotLiked when there is nothing to remove.
func (s *NoteLikeService) Unlike(ctx context.Context, noteID, userID uint) (int64, error) {
	var count int64
	err := s.store.WithTx(ctx, func(tx repositories.LikeStore) error {
		if _, err := tx.GetRecipe(ctx, noteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoteNotFound
			}
			return err
		}

		exists, err := tx.HasNoteLike(ctx, noteID, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotLiked
		}

		if err := tx.DeleteNoteLike(ctx, noteID, userID); err != nil {
			return err
		}
		count, err = tx.CountNoteLikes(ctx, noteID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasLiked reports whether the user currently likes the note
func (s *NoteLikeService) HasLiked(ctx context.Context, noteID, userID uint) (bool, error) {
	if _, err := s.store.GetRecipe(ctx, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNoteNotFound
		}
		return false, err
	}
	return s.store.HasNoteLike(ctx, noteID, userID)
}

// LikeCount returns the number of likes on the note
func (s *NoteLikeService) LikeCount(ctx context.Context, noteID uint) (int64, error) {
	if _, err := s.store.GetRecipe(ctx, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoteNotFound
		}
		return 0, err
	}
	return s.store.CountNoteLikes(ctx, noteID)
}

// Likes lists the likes on the note, newest first
func (s *NoteLikeService) Likes(ctx context.Context, noteID uint) ([]models.NoteLike, error) {
	if _, err := s.store.GetRecipe(ctx, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return s.store.ListNoteLikes(ctx, noteID)
}

func (s *NoteLikeService) emitNoteLikeNotification(ctx context.Context, note *models.Recipe, likerID uint) error {
	likerName := "Someone"
	if liker, err := s.store.GetUser(ctx, likerID); err == nil {
		likerName = liker.Username
	}
	return s.store.InsertNotification(ctx, &models.Notification{
		ReceiverID: note.UserID,
		SenderID:   &likerID,
		Type:       models.NotificationTypeLike,
		Message:    fmt.Sprintf("%s liked the note on your recipe '%s'.", likerName, note.Name),
		RecipeID:   &note.ID,
	})
}
