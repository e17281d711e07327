package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/kaxixi6666/foodflow/backend/pkg/vision"
	"github.com/labstack/echo/v4"
)

// InventoryHandler handles pantry inventory HTTP requests
type InventoryHandler struct {
	inventoryRepository  repositories.InventoryRepository
	ingredientRepository repositories.IngredientRepository
	recognitionService   *services.RecognitionService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryRepo repositories.InventoryRepository, ingredientRepo repositories.IngredientRepository, recognitionService *services.RecognitionService) *InventoryHandler {
	return &InventoryHandler{
		inventoryRepository:  inventoryRepo,
		ingredientRepository: ingredientRepo,
		recognitionService:   recognitionService,
	}
}

// RegisterInventoryRoutes registers inventory-related routes
func (h *InventoryHandler) RegisterInventoryRoutes(g *echo.Group) {
	g.GET("/inventory", h.GetInventory)
	g.POST("/inventory", h.AddItem)
	g.POST("/inventory/batch", h.AddItems)
	g.POST("/inventory/detect", h.DetectItems)
	g.PUT("/inventory/:id", h.UpdateItem)
	g.DELETE("/inventory/:id", h.DeleteItem)
}

// GetInventory lists the caller's inventory
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	userID := getUserIDFromContext(c)

	items, err := h.inventoryRepository.GetByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// AddItem adds a single item, finding or creating its ingredient
func (h *InventoryHandler) AddItem(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.addOne(userID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

// AddItems adds a batch of items in one call
func (h *InventoryHandler) AddItems(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.BatchInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]models.InventoryItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := h.addOne(userID, itemReq)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		items = append(items, *item)
	}
	return c.JSON(http.StatusCreated, items)
}

// DetectItems runs a fridge photo through the vision model and adds every
// recognized ingredient to the caller's inventory.
func (h *InventoryHandler) DetectItems(c echo.Context) error {
	userID := getUserIDFromContext(c)

	image, format, err := readImageFile(c)
	if err != nil {
		return err
	}

	recognized, err := h.recognitionService.RecognizeImage(c.Request().Context(), userID, image, format, services.ScenarioFridge)
	if err != nil {
		return mapRecognitionError(err)
	}

	items := make([]models.InventoryItem, 0, len(recognized))
	for _, r := range recognized {
		item, err := h.addOne(userID, models.InventoryItemRequest{
			Name:     r.Name,
			Category: r.Category,
			Quantity: r.Quantity,
			Unit:     r.Unit,
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		items = append(items, *item)
	}
	return c.JSON(http.StatusCreated, items)
}

// UpdateItem updates quantity and unit of an item the caller owns
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.inventoryRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Inventory item not found")
	}

	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.LastUpdated = time.Now()

	if err := h.inventoryRepository.Update(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item the caller owns
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.inventoryRepository.GetByIDForUser(id, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Inventory item not found")
	}

	if err := h.inventoryRepository.Delete(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InventoryHandler) addOne(userID uint, req models.InventoryItemRequest) (*models.InventoryItem, error) {
	ingredient, err := h.ingredientRepository.FindOrCreate(req.Name, req.Category)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		UserID:       userID,
		IngredientID: ingredient.ID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		LastUpdated:  time.Now(),
	}
	if err := h.inventoryRepository.Create(item); err != nil {
		return nil, err
	}
	item.Ingredient = *ingredient
	return item, nil
}

// readImageFile pulls the uploaded "image" part out of a multipart request
func readImageFile(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "Cannot open image file")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "Cannot read image file")
	}
	return image, vision.ImageFormat(fileHeader.Filename), nil
}
