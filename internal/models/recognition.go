package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognition sources
const (
	RecognitionSourceText        = "text"
	RecognitionSourceDescription = "image-description"
	RecognitionSourceImage       = "image"
)

// RecognizedIngredient is one item extracted from a vision model reply.
type RecognizedIngredient struct {
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
	Quantity string `json:"quantity" bson:"quantity"`
	Unit     string `json:"unit" bson:"unit"`
}

// RecognitionRecord is the MongoDB history document for one recognition call.
type RecognitionRecord struct {
	ID          primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID      uint                   `json:"userId" bson:"user_id"`
	Source      string                 `json:"source" bson:"source"`
	Scenario    string                 `json:"scenario,omitempty" bson:"scenario,omitempty"`
	Input       string                 `json:"input" bson:"input"`
	Ingredients []RecognizedIngredient `json:"ingredients" bson:"ingredients"`
	CreatedAt   time.Time              `json:"createdAt" bson:"created_at"`
}

// RecognizeTextRequest defines the request body for text recognition
type RecognizeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// RecognizeDescriptionRequest defines the request body for image-description recognition
type RecognizeDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}
