package models

import "time"

// Notification types
const (
	NotificationTypeLike = "LIKE"
)

// Notification is an append-only record for its receiver; only the read
// flag is ever mutated, and unlikes never delete it.
type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReceiverID uint      `json:"receiverId" gorm:"index;not null"`
	SenderID   *uint     `json:"senderId"`
	Type       string    `json:"type" gorm:"size:30"`
	Message    string    `json:"message"`
	RecipeID   *uint     `json:"recipeId"`
	IsRead     bool      `json:"isRead" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}
