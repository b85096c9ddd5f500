package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/photocard/repository"
)

type PhotoCardCtrl struct {
	repo repository.PhotoCardRepository
}

func New(repo repository.PhotoCardRepository) *PhotoCardCtrl { return &PhotoCardCtrl{repo: repo} }

type createRequest struct {
	UserID    string   `json:"user_id"`
	Province  string   `json:"province"`
	City      string   `json:"city"`
	Message   string   `json:"message"`
	Hashtags  []string `json:"hashtags"`
	AIQuote   string   `json:"ai_quote"`
	ImagePath string   `json:"image_path"`
}

func (h *PhotoCardCtrl) Create(c echo.Context) error {
	var body createRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if body.Province == "" || body.City == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "province and city are required"})
	}

	card := &entities.PhotoCard{
		ID:        uuid.NewString(),
		UserID:    body.UserID,
		Province:  body.Province,
		City:      body.City,
		Message:   body.Message,
		Hashtags:  body.Hashtags,
		AIQuote:   body.AIQuote,
		ImagePath: body.ImagePath,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	if err := h.repo.Create(card); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *PhotoCardCtrl) Get(c echo.Context) error {
	card, err := h.repo.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "PhotoCard not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, card)
}

func (h *PhotoCardCtrl) Verify(c echo.Context) error {
	id := c.Param("id")
	ok, err := h.repo.Verify(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Invalid or inactive PhotoCard"})
	}
	return c.JSON(http.StatusOK, map[string]any{"valid": true, "photo_card_id": id})
}
