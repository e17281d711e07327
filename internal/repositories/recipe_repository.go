package repositories

import (
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	GetByUserID(userID uint) ([]models.Recipe, error)
	GetPublic() ([]models.Recipe, error)
	GetByStatus(userID uint, status string) ([]models.Recipe, error)
	GetByID(id uint) (*models.Recipe, error)
	GetByIDForUser(id, userID uint) (*models.Recipe, error)
	Create(recipe *models.Recipe) error
	Update(recipe *models.Recipe) error
	ReplaceIngredients(recipe *models.Recipe, ingredients []models.Ingredient) error
	Delete(recipe *models.Recipe) error
}

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *gorm.DB
}

// NewPostgresRecipeRepository creates a new PostgresRecipeRepository
func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// GetByUserID retrieves all recipes owned by a user, with ingredients
func (r *PostgresRecipeRepository) GetByUserID(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id").
		Find(&recipes).Error
	return recipes, err
}

// GetPublic retrieves all public recipes, with ingredients
func (r *PostgresRecipeRepository) GetPublic() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Ingredients").
		Where("is_public = true").
		Order("id").
		Find(&recipes).Error
	return recipes, err
}

// GetByStatus retrieves a user's recipes filtered by status
func (r *PostgresRecipeRepository) GetByStatus(userID uint, status string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Ingredients").
		Where("status = ? AND user_id = ?", status, userID).
		Find(&recipes).Error
	return recipes, err
}

// GetByID retrieves a recipe by ID, with ingredients
func (r *PostgresRecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Ingredients").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByIDForUser retrieves a recipe only if the given user owns it
func (r *PostgresRecipeRepository) GetByIDForUser(id, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create creates a new recipe in PostgreSQL
func (r *PostgresRecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// Update saves an existing recipe's scalar fields
func (r *PostgresRecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Omit("Ingredients").Save(recipe).Error
}

// ReplaceIngredients swaps the recipe's ingredient associations
func (r *PostgresRecipeRepository) ReplaceIngredients(recipe *models.Recipe, ingredients []models.Ingredient) error {
	return r.db.Model(recipe).Association("Ingredients").Replace(ingredients)
}

// Delete removes a recipe and everything referencing it: meal plans, like
// rows, notifications, then the ingredient links. The order matters for
// foreign keys and runs in one transaction.
func (r *PostgresRecipeRepository) Delete(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", recipe.ID).Delete(&models.NoteLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}
