package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RecognitionHandler handles ingredient recognition HTTP requests
type RecognitionHandler struct {
	recognitionService *services.RecognitionService
}

// NewRecognitionHandler creates a new RecognitionHandler
func NewRecognitionHandler(recognitionService *services.RecognitionService) *RecognitionHandler {
	return &RecognitionHandler{recognitionService: recognitionService}
}

// RegisterRecognitionRoutes registers recognition routes under /ingredients
func (h *RecognitionHandler) RegisterRecognitionRoutes(g *echo.Group) {
	g.POST("/ingredients/recognition/text", h.RecognizeText)
	g.POST("/ingredients/recognition/image-description", h.RecognizeDescription)
	g.POST("/ingredients/recognition/image", h.RecognizeImage)
	g.GET("/ingredients/recognition/history", h.GetHistory)
}

// RecognizeText extracts ingredients from free-form text
func (h *RecognitionHandler) RecognizeText(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.RecognizeTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ingredients, err := h.recognitionService.RecognizeText(c.Request().Context(), userID, req.Text)
	if err != nil {
		return mapRecognitionError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ingredients": ingredients})
}

// RecognizeDescription extracts ingredients from an image description
func (h *RecognitionHandler) RecognizeDescription(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.RecognizeDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ingredients, err := h.recognitionService.RecognizeDescription(c.Request().Context(), userID, req.Description)
	if err != nil {
		return mapRecognitionError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ingredients": ingredients})
}

// RecognizeImage extracts ingredients from an uploaded photo. The optional
// scenario form field switches between fridge and receipt prompts.
func (h *RecognitionHandler) RecognizeImage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	image, format, err := readImageFile(c)
	if err != nil {
		return err
	}
	scenario := c.FormValue("scenario")

	ingredients, err := h.recognitionService.RecognizeImage(c.Request().Context(), userID, image, format, scenario)
	if err != nil {
		return mapRecognitionError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ingredients": ingredients})
}

// GetHistory returns the caller's recent recognition records
func (h *RecognitionHandler) GetHistory(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var limit int64
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.ParseInt(l, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = parsed
	}

	records, err := h.recognitionService.History(c.Request().Context(), userID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func mapRecognitionError(err error) error {
	if errors.Is(err, services.ErrRecognitionUpstream) {
		return echo.NewHTTPError(http.StatusBadGateway, "Recognition model unavailable")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
