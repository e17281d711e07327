package handlers

import (
	"net/http"

	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// IngredientHandler serves the shared ingredient catalogue
type IngredientHandler struct {
	ingredientRepository repositories.IngredientRepository
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientRepo repositories.IngredientRepository) *IngredientHandler {
	return &IngredientHandler{ingredientRepository: ingredientRepo}
}

// RegisterIngredientRoutes registers ingredient catalogue routes
func (h *IngredientHandler) RegisterIngredientRoutes(g *echo.Group) {
	g.GET("/ingredients", h.GetIngredients)
	g.GET("/ingredients/by-name/:name", h.GetIngredientByName)
	g.GET("/ingredients/:id", h.GetIngredient)
}

// GetIngredients lists the full catalogue
func (h *IngredientHandler) GetIngredients(c echo.Context) error {
	ingredients, err := h.ingredientRepository.GetAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ingredients)
}

// GetIngredient returns one catalogue entry by id
func (h *IngredientHandler) GetIngredient(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	ingredient, err := h.ingredientRepository.GetByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Ingredient not found")
	}
	return c.JSON(http.StatusOK, ingredient)
}

// GetIngredientByName returns one catalogue entry by exact name
func (h *IngredientHandler) GetIngredientByName(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid name")
	}

	ingredient, err := h.ingredientRepository.GetByName(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Ingredient not found")
	}
	return c.JSON(http.StatusOK, ingredient)
}
