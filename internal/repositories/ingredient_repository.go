package repositories

import (
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository defines the interface for ingredient catalogue operations
type IngredientRepository interface {
	GetAll() ([]models.Ingredient, error)
	GetByID(id uint) (*models.Ingredient, error)
	GetByName(name string) (*models.Ingredient, error)
	Create(ingredient *models.Ingredient) error
	FindOrCreate(name, category string) (*models.Ingredient, error)
}

// PostgresIngredientRepository implements IngredientRepository for PostgreSQL
type PostgresIngredientRepository struct {
	db *gorm.DB
}

// NewPostgresIngredientRepository creates a new PostgresIngredientRepository
func NewPostgresIngredientRepository(db *gorm.DB) *PostgresIngredientRepository {
	return &PostgresIngredientRepository{db: db}
}

// GetAll retrieves the full ingredient catalogue
func (r *PostgresIngredientRepository) GetAll() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.db.Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByID retrieves an ingredient by ID
func (r *PostgresIngredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByName retrieves an ingredient by exact name
func (r *PostgresIngredientRepository) GetByName(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Create creates a new ingredient
func (r *PostgresIngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// FindOrCreate returns the ingredient with the given name, creating it with
// the category (defaulting to Uncategorized) when absent.
func (r *PostgresIngredientRepository) FindOrCreate(name, category string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if category == "" {
		category = "Uncategorized"
	}
	ingredient = models.Ingredient{Name: name, Category: category}
	if err := r.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
