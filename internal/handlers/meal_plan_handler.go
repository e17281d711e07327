package handlers

import (
	"net/http"
	"time"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// MealPlanHandler handles meal plans and the shopping list derived from them
type MealPlanHandler struct {
	mealPlanRepository     repositories.MealPlanRepository
	recipeRepository       repositories.RecipeRepository
	shoppingListRepository repositories.ShoppingListRepository
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(mealPlanRepo repositories.MealPlanRepository, recipeRepo repositories.RecipeRepository, shoppingListRepo repositories.ShoppingListRepository) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanRepository:     mealPlanRepo,
		recipeRepository:       recipeRepo,
		shoppingListRepository: shoppingListRepo,
	}
}

// RegisterMealPlanRoutes registers meal plan and shopping list routes
func (h *MealPlanHandler) RegisterMealPlanRoutes(g *echo.Group) {
	// The shopping list lives under /meal-plans because its entries are
	// sourced from planned recipes.
	g.GET("/meal-plans/shopping-list", h.GetShoppingList)
	g.POST("/meal-plans/shopping-list", h.AddShoppingListItem)
	g.POST("/meal-plans/shopping-list/generate", h.GenerateShoppingList)
	g.PUT("/meal-plans/shopping-list/:id", h.UpdateShoppingListItem)
	g.DELETE("/meal-plans/shopping-list/:id", h.DeleteShoppingListItem)
	g.DELETE("/meal-plans/shopping-list", h.ClearCheckedItems)

	g.GET("/meal-plans", h.GetMealPlans)
	g.GET("/meal-plans/week", h.GetWeekMealPlans)
	g.GET("/meal-plans/date/:date", h.GetMealPlansByDate)
	g.POST("/meal-plans", h.CreateMealPlan)
	g.PUT("/meal-plans/:id", h.UpdateMealPlan)
	g.DELETE("/meal-plans/:id", h.DeleteMealPlan)
}

// GetMealPlans lists all of the caller's meal plans
func (h *MealPlanHandler) GetMealPlans(c echo.Context) error {
	userID := getUserIDFromContext(c)

	plans, err := h.mealPlanRepository.GetByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, plans)
}

// GetWeekMealPlans lists the caller's meal plans for the coming week,
// starting today or at the optional start query parameter.
func (h *MealPlanHandler) GetWeekMealPlans(c echo.Context) error {
	userID := getUserIDFromContext(c)

	start := time.Now().Truncate(24 * time.Hour)
	if s := c.QueryParam("start"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		}
		start = parsed
	}

	plans, err := h.mealPlanRepository.GetByDateRange(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, plans)
}

// GetMealPlansByDate lists the caller's meal plans for one day
func (h *MealPlanHandler) GetMealPlansByDate(c echo.Context) error {
	userID := getUserIDFromContext(c)

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	plans, err := h.mealPlanRepository.GetByDate(userID, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, plans)
}

// CreateMealPlan schedules a recipe for a date and meal slot
func (h *MealPlanHandler) CreateMealPlan(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.SaveMealPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.recipeRepository.GetByID(req.RecipeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}

	date, _ := time.Parse(dateLayout, req.Date)
	plan := &models.MealPlan{
		UserID:   userID,
		RecipeID: recipe.ID,
		Date:     date,
		MealType: req.MealType,
	}

	if err := h.mealPlanRepository.Create(plan); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	plan.Recipe = *recipe
	return c.JSON(http.StatusCreated, plan)
}

// UpdateMealPlan reschedules a meal plan the caller owns
func (h *MealPlanHandler) UpdateMealPlan(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.SaveMealPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.mealPlanRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Meal plan not found")
	}

	recipe, err := h.recipeRepository.GetByID(req.RecipeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}

	date, _ := time.Parse(dateLayout, req.Date)
	plan.RecipeID = recipe.ID
	plan.Date = date
	plan.MealType = req.MealType

	if err := h.mealPlanRepository.Update(plan); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	plan.Recipe = *recipe
	return c.JSON(http.StatusOK, plan)
}

// DeleteMealPlan removes a meal plan the caller owns
func (h *MealPlanHandler) DeleteMealPlan(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.mealPlanRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Meal plan not found")
	}

	if err := h.mealPlanRepository.Delete(plan); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShoppingList lists the caller's shopping list
func (h *MealPlanHandler) GetShoppingList(c echo.Context) error {
	userID := getUserIDFromContext(c)

	items, err := h.shoppingListRepository.GetByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// AddShoppingListItem adds a free-form entry to the shopping list
func (h *MealPlanHandler) AddShoppingListItem(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.SaveShoppingListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &models.ShoppingListItem{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
	}
	if req.Checked != nil {
		item.Checked = *req.Checked
	}

	if err := h.shoppingListRepository.Create(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

// GenerateShoppingList adds the ingredients of every recipe planned in the
// coming week to the shopping list, skipping names already on it.
func (h *MealPlanHandler) GenerateShoppingList(c echo.Context) error {
	userID := getUserIDFromContext(c)

	start := time.Now().Truncate(24 * time.Hour)
	plans, err := h.mealPlanRepository.GetByDateRange(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	existing, err := h.shoppingListRepository.GetByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	onList := make(map[string]bool, len(existing))
	for _, item := range existing {
		onList[item.Name] = true
	}

	added := make([]models.ShoppingListItem, 0)
	for _, plan := range plans {
		for _, ingredient := range plan.Recipe.Ingredients {
			if onList[ingredient.Name] {
				continue
			}
			item := models.ShoppingListItem{
				UserID:   userID,
				Name:     ingredient.Name,
				Category: ingredient.Category,
			}
			if err := h.shoppingListRepository.Create(&item); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			onList[ingredient.Name] = true
			added = append(added, item)
		}
	}
	return c.JSON(http.StatusCreated, added)
}

// UpdateShoppingListItem updates an entry the caller owns
func (h *MealPlanHandler) UpdateShoppingListItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.SaveShoppingListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.shoppingListRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Shopping list item not found")
	}

	item.Name = req.Name
	item.Category = req.Category
	if req.Checked != nil {
		item.Checked = *req.Checked
	}

	if err := h.shoppingListRepository.Update(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteShoppingListItem removes an entry the caller owns
func (h *MealPlanHandler) DeleteShoppingListItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.shoppingListRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Shopping list item not found")
	}

	if err := h.shoppingListRepository.Delete(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearCheckedItems removes every checked entry from the caller's list
func (h *MealPlanHandler) ClearCheckedItems(c echo.Context) error {
	userID := getUserIDFromContext(c)

	count, err := h.shoppingListRepository.ClearChecked(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"cleared": count})
}
