package controllerImp

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/review/repository"
)

type ReviewCtrl struct {
	repo repository.ReviewRepository
}

func New(repo repository.ReviewRepository) *ReviewCtrl { return &ReviewCtrl{repo: repo} }

type reviewRequest struct {
	PlaceID     string `json:"place_id"`
	PlaceName   string `json:"place_name"`
	Rating      int    `json:"rating"`
	Content     string `json:"content"`
	UserID      string `json:"user_id"`
	PhotoCardID string `json:"photo_card_id"`
}

func (h *ReviewCtrl) Create(c echo.Context) error {
	var body reviewRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if body.PlaceID == "" || body.PlaceName == "" || body.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "place_id, place_name and content are required"})
	}
	if body.Rating < 1 || body.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be between 1 and 5"})
	}

	rv := &entities.Review{
		ID:          uuid.NewString(),
		PlaceID:     body.PlaceID,
		PlaceName:   body.PlaceName,
		Rating:      body.Rating,
		Content:     body.Content,
		UserID:      body.UserID,
		PhotoCardID: body.PhotoCardID,
		CreatedAt:   time.Now(),
	}
	if err := h.repo.Create(rv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rv)
}

func (h *ReviewCtrl) ListByPlace(c echo.Context) error {
	placeID := c.Param("place_id")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	reviews, err := h.repo.ListByPlace(placeID, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	avg, count, err := h.repo.PlaceRating(placeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"reviews":        reviews,
		"average_rating": round1(avg),
		"total_count":    count,
	})
}

func (h *ReviewCtrl) PlaceRating(c echo.Context) error {
	placeID := c.Param("place_id")
	avg, count, err := h.repo.PlaceRating(placeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"place_id":       placeID,
		"average_rating": round1(avg),
		"review_count":   count,
	})
}

func (h *ReviewCtrl) Update(c echo.Context) error {
	rv, err := h.repo.ByID(c.Param("id"))
	if err != nil {
		return h.notFoundOr500(c, err)
	}
	var body struct {
		Rating  *int    `json:"rating"`
		Content *string `json:"content"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if body.Rating != nil {
		if *body.Rating < 1 || *body.Rating > 5 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be between 1 and 5"})
		}
		rv.Rating = *body.Rating
	}
	if body.Content != nil {
		rv.Content = *body.Content
	}
	if err := h.repo.Update(rv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewCtrl) Delete(c echo.Context) error {
	if _, err := h.repo.ByID(c.Param("id")); err != nil {
		return h.notFoundOr500(c, err)
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReviewCtrl) notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
