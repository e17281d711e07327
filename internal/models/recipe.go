package models

import "time"

// Recipe statuses. IsPublic is always derived from Status.
const (
	RecipeStatusDraft  = "draft"
	RecipeStatusPublic = "public"
)

// Recipe represents a recipe owned by its creator. LikeCount is a
// denormalized cache; the recipe_likes rows are the source of truth and the
// cached value is overwritten from them after every toggle.
type Recipe struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"userId" gorm:"index"`
	Name         string       `json:"name" gorm:"size:200;not null"`
	Status       string       `json:"status" gorm:"size:20;default:draft"`
	IsPublic     bool         `json:"isPublic" gorm:"index"`
	PrepTime     int          `json:"prepTime"`
	CookTime     int          `json:"cookTime"`
	Servings     int          `json:"servings"`
	Instructions string       `json:"instructions"`
	Note         string       `json:"note"`
	LikeCount    int64        `json:"likeCount" gorm:"default:0"`
	Ingredients  []Ingredient `json:"ingredients" gorm:"many2many:recipe_ingredients"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// RecipeIngredientInput references an existing ingredient by id or names a
// new one to be found or created.
type RecipeIngredientInput struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" validate:"max=100"`
	Category string `json:"category" validate:"max=50"`
}

// SaveRecipeRequest defines the request body for creating or updating a recipe
type SaveRecipeRequest struct {
	Name         string                  `json:"name" validate:"required,max=200"`
	Status       string                  `json:"status" validate:"omitempty,oneof=draft public"`
	PrepTime     int                     `json:"prepTime" validate:"min=0"`
	CookTime     int                     `json:"cookTime" validate:"min=0"`
	Servings     int                     `json:"servings" validate:"min=0"`
	Instructions string                  `json:"instructions"`
	Note         string                  `json:"note"`
	Ingredients  []RecipeIngredientInput `json:"ingredients" validate:"dive"`
}
