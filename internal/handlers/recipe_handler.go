package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// toggleTimeout bounds a like toggle including its count recompute
const toggleTimeout = 5 * time.Second

// RecipeHandler handles recipe CRUD and the like endpoints
type RecipeHandler struct {
	recipeRepository     repositories.RecipeRepository
	ingredientRepository repositories.IngredientRepository
	likeService          *services.LikeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeRepo repositories.RecipeRepository, ingredientRepo repositories.IngredientRepository, likeService *services.LikeService) *RecipeHandler {
	return &RecipeHandler{
		recipeRepository:     recipeRepo,
		ingredientRepository: ingredientRepo,
		likeService:          likeService,
	}
}

// RegisterRecipeRoutes registers recipe-related routes
func (h *RecipeHandler) RegisterRecipeRoutes(g *echo.Group) {
	g.GET("/recipes", h.GetRecipes)
	g.GET("/recipes/public", h.GetPublicRecipes)
	g.GET("/recipes/status/:status", h.GetRecipesByStatus)
	g.GET("/recipes/:id", h.GetRecipe)
	g.POST("/recipes", h.CreateRecipe)
	g.PUT("/recipes/:id", h.UpdateRecipe)
	g.DELETE("/recipes/:id", h.DeleteRecipe)

	g.POST("/recipes/:id/like", h.ToggleLike)
	g.GET("/recipes/:id/like/status", h.GetLikeStatus)
	g.GET("/recipes/:id/like-count", h.GetLikeCount)
}

// GetRecipes lists the caller's recipes with their ingredients
func (h *RecipeHandler) GetRecipes(c echo.Context) error {
	userID := getUserIDFromContext(c)

	recipes, err := h.recipeRepository.GetByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, recipes)
}

// GetPublicRecipes lists all public recipes
func (h *RecipeHandler) GetPublicRecipes(c echo.Context) error {
	recipes, err := h.recipeRepository.GetPublic()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, recipes)
}

// GetRecipesByStatus lists the caller's recipes filtered by status
func (h *RecipeHandler) GetRecipesByStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)
	status := c.Param("status")
	if status != models.RecipeStatusDraft && status != models.RecipeStatusPublic {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	recipes, err := h.recipeRepository.GetByStatus(userID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one recipe. Drafts are only visible to their owner.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeRepository.GetByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	return c.JSON(http.StatusOK, recipe)
}

// CreateRecipe creates a recipe, finding or creating its ingredients
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.SaveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ingredients, err := h.resolveIngredients(req.Ingredients)
	if err != nil {
		return err
	}

	status := req.Status
	if status == "" {
		status = models.RecipeStatusDraft
	}

	recipe := &models.Recipe{
		UserID:       userID,
		Name:         req.Name,
		Status:       status,
		IsPublic:     status == models.RecipeStatusPublic,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Instructions: req.Instructions,
		Note:         req.Note,
		Ingredients:  ingredients,
	}

	if err := h.recipeRepository.Create(recipe); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe updates a recipe the caller owns
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.SaveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.recipeRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}

	ingredients, err := h.resolveIngredients(req.Ingredients)
	if err != nil {
		return err
	}

	recipe.Name = req.Name
	if req.Status != "" {
		recipe.Status = req.Status
		recipe.IsPublic = req.Status == models.RecipeStatusPublic
	}
	recipe.PrepTime = req.PrepTime
	recipe.CookTime = req.CookTime
	recipe.Servings = req.Servings
	recipe.Instructions = req.Instructions
	recipe.Note = req.Note

	if err := h.recipeRepository.Update(recipe); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.recipeRepository.ReplaceIngredients(recipe, ingredients); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.recipeRepository.GetByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRecipe removes a recipe the caller owns together with its meal
// plans, likes, notifications and ingredient links.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}

	if err := h.recipeRepository.Delete(recipe); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleLike flips the caller's like on a recipe
func (h *RecipeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), toggleTimeout)
	defer cancel()

	liked, count, err := h.likeService.ToggleLike(ctx, id, userID)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, models.LikeResponse{Liked: liked, LikeCount: count})
}

// GetLikeStatus reports whether the caller likes the recipe
func (h *RecipeHandler) GetLikeStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	liked, err := h.likeService.HasLiked(c.Request().Context(), id, userID)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}

// GetLikeCount returns the recipe's like count, recomputed from the rows
func (h *RecipeHandler) GetLikeCount(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.likeService.RecomputeLikeCount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, models.LikeCountResponse{LikeCount: count})
}

func (h *RecipeHandler) resolveIngredients(inputs []models.RecipeIngredientInput) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	for _, input := range inputs {
		if input.ID != 0 {
			ingredient, err := h.ingredientRepository.GetByID(input.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, echo.NewHTTPError(http.StatusBadRequest, "Unknown ingredient id")
				}
				return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			ingredients = append(ingredients, *ingredient)
			continue
		}
		if input.Name == "" {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Ingredient needs an id or a name")
		}
		ingredient, err := h.ingredientRepository.FindOrCreate(input.Name, input.Category)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		ingredients = append(ingredients, *ingredient)
	}
	return ingredients, nil
}
