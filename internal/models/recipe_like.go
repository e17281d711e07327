package models

import "time"

// RecipeLike is one row of the like ledger driving Recipe.LikeCount. The
// composite unique index is the only guard against concurrent duplicate
// likes for the same (user, recipe) pair.
type RecipeLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:uq_recipe_likes_user_recipe"`
	RecipeID  uint      `json:"recipeId" gorm:"not null;uniqueIndex:uq_recipe_likes_user_recipe;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

// LikeResponse is returned by the recipe like toggle endpoint
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// LikeCountResponse is returned by the like-count endpoint
type LikeCountResponse struct {
	LikeCount int64 `json:"likeCount"`
}
