package repositories

import (
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// ShoppingListRepository defines the interface for shopping list operations
type ShoppingListRepository interface {
	GetByUserID(userID uint) ([]models.ShoppingListItem, error)
	GetByIDForUser(id, userID uint) (*models.ShoppingListItem, error)
	Create(item *models.ShoppingListItem) error
	Update(item *models.ShoppingListItem) error
	Delete(item *models.ShoppingListItem) error
	ClearChecked(userID uint) (int64, error)
}

// PostgresShoppingListRepository implements ShoppingListRepository for PostgreSQL
type PostgresShoppingListRepository struct {
	db *gorm.DB
}

// NewPostgresShoppingListRepository creates a new PostgresShoppingListRepository
func NewPostgresShoppingListRepository(db *gorm.DB) *PostgresShoppingListRepository {
	return &PostgresShoppingListRepository{db: db}
}

// GetByUserID retrieves a user's shopping list
func (r *PostgresShoppingListRepository) GetByUserID(userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	return items, err
}

// GetByIDForUser retrieves an item only if the given user owns it
func (r *PostgresShoppingListRepository) GetByIDForUser(id, userID uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a new shopping list item
func (r *PostgresShoppingListRepository) Create(item *models.ShoppingListItem) error {
	return r.db.Create(item).Error
}

// Update saves an existing shopping list item
func (r *PostgresShoppingListRepository) Update(item *models.ShoppingListItem) error {
	return r.db.Save(item).Error
}

// Delete removes a shopping list item
func (r *PostgresShoppingListRepository) Delete(item *models.ShoppingListItem) error {
	return r.db.Delete(item).Error
}

// ClearChecked removes all checked items for a user and reports the count
func (r *PostgresShoppingListRepository) ClearChecked(userID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND checked = true", userID).Delete(&models.ShoppingListItem{})
	return res.RowsAffected, res.Error
}
