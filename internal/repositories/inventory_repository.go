package repositories

import (
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	GetByUserID(userID uint) ([]models.InventoryItem, error)
	GetByIDForUser(id, userID uint) (*models.InventoryItem, error)
	Create(item *models.InventoryItem) error
	Update(item *models.InventoryItem) error
	Delete(item *models.InventoryItem) error
}

// PostgresInventoryRepository implements InventoryRepository for PostgreSQL
type PostgresInventoryRepository struct {
	db *gorm.DB
}

// NewPostgresInventoryRepository creates a new PostgresInventoryRepository
func NewPostgresInventoryRepository(db *gorm.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// GetByUserID retrieves a user's inventory, newest first, with ingredients
func (r *PostgresInventoryRepository) GetByUserID(userID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// GetByIDForUser retrieves an inventory item only if the given user owns it
func (r *PostgresInventoryRepository) GetByIDForUser(id, userID uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.Preload("Ingredient").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a new inventory item
func (r *PostgresInventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

// Update saves an existing inventory item
func (r *PostgresInventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

// Delete removes an inventory item
func (r *PostgresInventoryRepository) Delete(item *models.InventoryItem) error {
	return r.db.Delete(item).Error
}
