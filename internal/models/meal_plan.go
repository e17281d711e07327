package models

import "time"

// MealPlan schedules a recipe for a date and meal slot.
type MealPlan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	RecipeID  uint      `json:"recipeId" gorm:"index"`
	Recipe    Recipe    `json:"recipe" gorm:"foreignKey:RecipeID"`
	Date      time.Time `json:"date" gorm:"index"`
	MealType  string    `json:"mealType" gorm:"size:20"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveMealPlanRequest defines the request body for creating or updating a meal plan
type SaveMealPlanRequest struct {
	RecipeID uint   `json:"recipeId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	MealType string `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
}
