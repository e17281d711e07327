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

// errLikeRace aborts a toggle transaction that lost an insert race. The
// caller treats it as "someone else just liked this pair" and settles on
// the liked state.
var errLikeRace = errors.New("concurrent like insert")

// LikeService implements the recipe like toggle. Every toggle runs in one
// transaction, recomputes the cached like count from the like rows, and
// emits at most one notification after the transaction commits.
type LikeService struct {
	store repositories.LikeStore
}

// NewLikeService creates a new LikeService
func NewLikeService(store repositories.LikeStore) *LikeService {
	return &LikeService{store: store}
}

// ToggleLike flips the like state of (recipeID, userID) and returns the new
// state along with the recomputed like count. A concurrent insert of the
// same pair is settled as already-liked rather than an error.
func (s *LikeService) ToggleLike(ctx context.Context, recipeID, userID uint) (bool, int64, error) {
	var (
		liked     bool
		count     int64
		recipe    *models.Recipe
		firstLike bool
	)

	err := s.store.WithTx(ctx, func(tx repositories.LikeStore) error {
		r, err := tx.GetRecipe(ctx, recipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		recipe = r

		exists, err := tx.HasRecipeLike(ctx, recipeID, userID)
		if err != nil {
			return err
		}

		if !exists {
			outcome, err := tx.InsertRecipeLike(ctx, &models.RecipeLike{UserID: userID, RecipeID: recipeID})
			if err != nil {
				return err
			}
			if outcome == repositories.LikeAlreadyExists {
				return errLikeRace
			}
			liked = true
			firstLike = true
		} else {
			if err := tx.DeleteRecipeLike(ctx, recipeID, userID); err != nil {
				return err
			}
			liked = false
		}

		count, err = tx.CountRecipeLikes(ctx, recipeID)
		if err != nil {
			return err
		}
		return tx.SetRecipeLikeCount(ctx, recipeID, count)
	})
	if err != nil {
		if errors.Is(err, errLikeRace) {
			current, rerr := s.RecomputeLikeCount(ctx, recipeID)
			if rerr != nil {
				return false, 0, rerr
			}
			return true, current, nil
		}
		return false, 0, err
	}

	// Notification failures must never undo a committed like.
	if firstLike && recipe.UserID != userID {
		if nerr := s.emitLikeNotification(ctx, recipe, userID); nerr != nil {
			logrus.WithError(nerr).WithFields(logrus.Fields{
				"recipeId": recipeID,
				"userId":   userID,
			}).Warn("like notification not created")
		}
	}

	return liked, count, nil
}

// HasLiked reports whether the user currently likes the recipe
func (s *LikeService) HasLiked(ctx context.Context, recipeID, userID uint) (bool, error) {
	if _, err := s.store.GetRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRecipeNotFound
		}
		return false, err
	}
	return s.store.HasRecipeLike(ctx, recipeID, userID)
}

// RecomputeLikeCount rewrites the recipe's cached like count from the like
// rows and returns the fresh value.
func (s *LikeService) RecomputeLikeCount(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	err := s.store.WithTx(ctx, func(tx repositories.LikeStore) error {
		if _, err := tx.GetRecipe(ctx, recipeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		var err error
		count, err = tx.CountRecipeLikes(ctx, recipeID)
		if err != nil {
			return err
		}
		return tx.SetRecipeLikeCount(ctx, recipeID, count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *LikeService) emitLikeNotification(ctx context.Context, recipe *models.Recipe, likerID uint) error {
	likerName := "Someone"
	if liker, err := s.store.GetUser(ctx, likerID); err == nil {
		likerName = liker.Username
	}
	return s.store.InsertNotification(ctx, &models.Notification{
		ReceiverID: recipe.UserID,
		SenderID:   &likerID,
		Type:       models.NotificationTypeLike,
		Message:    fmt.Sprintf("%s liked your recipe '%s'.", likerName, recipe.Name),
		RecipeID:   &recipe.ID,
	})
}
