package repositories

import (
	"time"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// MealPlanRepository defines the interface for meal plan data operations
type MealPlanRepository interface {
	GetByUserID(userID uint) ([]models.MealPlan, error)
	GetByDateRange(userID uint, from, to time.Time) ([]models.MealPlan, error)
	GetByDate(userID uint, date time.Time) ([]models.MealPlan, error)
	GetByIDForUser(id, userID uint) (*models.MealPlan, error)
	Create(plan *models.MealPlan) error
	Update(plan *models.MealPlan) error
	Delete(plan *models.MealPlan) error
}

// PostgresMealPlanRepository implements MealPlanRepository for PostgreSQL
type PostgresMealPlanRepository struct {
	db *gorm.DB
}

// NewPostgresMealPlanRepository creates a new PostgresMealPlanRepository
func NewPostgresMealPlanRepository(db *gorm.DB) *PostgresMealPlanRepository {
	return &PostgresMealPlanRepository{db: db}
}

// GetByUserID retrieves all meal plans for a user, with recipes
func (r *PostgresMealPlanRepository) GetByUserID(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Preload("Recipe").Preload("Recipe.Ingredients").
		Where("user_id = ?", userID).
		Order("date").
		Find(&plans).Error
	return plans, err
}

// GetByDateRange retrieves meal plans within [from, to)
func (r *PostgresMealPlanRepository) GetByDateRange(userID uint, from, to time.Time) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Preload("Recipe").Preload("Recipe.Ingredients").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date").
		Find(&plans).Error
	return plans, err
}

// GetByDate retrieves meal plans for a single day
func (r *PostgresMealPlanRepository) GetByDate(userID uint, date time.Time) ([]models.MealPlan, error) {
	return r.GetByDateRange(userID, date, date.AddDate(0, 0, 1))
}

// GetByIDForUser retrieves a meal plan only if the given user owns it
func (r *PostgresMealPlanRepository) GetByIDForUser(id, userID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.Preload("Recipe").
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create creates a new meal plan
func (r *PostgresMealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

// Update saves an existing meal plan
func (r *PostgresMealPlanRepository) Update(plan *models.MealPlan) error {
	return r.db.Save(plan).Error
}

// Delete removes a meal plan
func (r *PostgresMealPlanRepository) Delete(plan *models.MealPlan) error {
	return r.db.Delete(plan).Error
}
