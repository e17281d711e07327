package handlers

import (
	"errors"
	"net/http"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NoteLikeHandler handles explicit like/unlike on public recipe notes
type NoteLikeHandler struct {
	noteLikeService *services.NoteLikeService
}

// NewNoteLikeHandler creates a new NoteLikeHandler
func NewNoteLikeHandler(noteLikeService *services.NoteLikeService) *NoteLikeHandler {
	return &NoteLikeHandler{noteLikeService: noteLikeService}
}

// RegisterNoteLikeRoutes registers note-like routes
func (h *NoteLikeHandler) RegisterNoteLikeRoutes(g *echo.Group) {
	g.POST("/notes/:id/like", h.Like)
	g.DELETE("/notes/:id/like", h.Unlike)
	g.GET("/notes/:id/like/status", h.GetStatus)
	g.GET("/notes/:id/like-count", h.GetCount)
	g.GET("/notes/:id/likes", h.GetLikes)
}

// Like records the caller's like on a note
func (h *NoteLikeHandler) Like(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.noteLikeService.Like(c.Request().Context(), id, userID)
	if err != nil {
		return mapNoteLikeError(err)
	}
	return c.JSON(http.StatusCreated, models.LikeCountResponse{LikeCount: count})
}

// Unlike removes the caller's like from a note
func (h *NoteLikeHandler) Unlike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.noteLikeService.Unlike(c.Request().Context(), id, userID)
	if err != nil {
		return mapNoteLikeError(err)
	}
	return c.JSON(http.StatusOK, models.LikeCountResponse{LikeCount: count})
}

// GetStatus reports whether the caller likes the note
func (h *NoteLikeHandler) GetStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	liked, err := h.noteLikeService.HasLiked(c.Request().Context(), id, userID)
	if err != nil {
		return mapNoteLikeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}

// GetCount returns the note's like count, derived from the like rows
func (h *NoteLikeHandler) GetCount(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.noteLikeService.LikeCount(c.Request().Context(), id)
	if err != nil {
		return mapNoteLikeError(err)
	}
	return c.JSON(http.StatusOK, models.LikeCountResponse{LikeCount: count})
}

// GetLikes lists the likes on the note
func (h *NoteLikeHandler) GetLikes(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	likes, err := h.noteLikeService.Likes(c.Request().Context(), id)
	if err != nil {
		return mapNoteLikeError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

func mapNoteLikeError(err error) error {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Note not found")
	case errors.Is(err, services.ErrNotePrivate):
		return echo.NewHTTPError(http.StatusBadRequest, "Note is not public")
	case errors.Is(err, services.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusConflict, "Note already liked by this user")
	case errors.Is(err, services.ErrNotLiked):
		return echo.NewHTTPError(http.StatusConflict, "Note not liked by this user")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
