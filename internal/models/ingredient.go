package models

// Ingredient is a catalogue entry shared by recipes and inventory items.
type Ingredient struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;index;not null"`
	Category    string `json:"category" gorm:"size:50"`
	Description string `json:"description,omitempty"`
}
