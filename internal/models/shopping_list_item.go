package models

import "time"

// ShoppingListItem is a free-form list entry; Checked items can be cleared
// in bulk.
type ShoppingListItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Category  string    `json:"category" gorm:"size:50"`
	Checked   bool      `json:"checked" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveShoppingListItemRequest defines the request body for shopping list writes
type SaveShoppingListItemRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=50"`
	Checked  *bool  `json:"checked"`
}
