package models

import "time"

// InventoryItem links an ingredient to a user's pantry. Each addition is a
// separate row; there is no duplicate merging.
type InventoryItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"userId" gorm:"index;not null"`
	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID"`
	Quantity     string     `json:"quantity" gorm:"size:30"`
	Unit         string     `json:"unit" gorm:"size:30"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastUpdated  time.Time  `json:"lastUpdated"`
}

// InventoryItemRequest defines the request body for adding an inventory item
type InventoryItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description"`
	Quantity    string `json:"quantity" validate:"max=30"`
	Unit        string `json:"unit" validate:"max=30"`
}

// BatchInventoryRequest defines the request body for batch additions
type BatchInventoryRequest struct {
	Items []InventoryItemRequest `json:"items" validate:"required,min=1,dive"`
}
