package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mannam/pkg/hashtag"
)

type HashtagCtrl struct {
	s *hashtag.Svc
}

func New(s *hashtag.Svc) *HashtagCtrl { return &HashtagCtrl{s: s} }

func (h *HashtagCtrl) Generate(c echo.Context) error {
	var body struct {
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Description) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "설명을 입력해주세요"})
	}

	hc, err := h.s.Generate(c.Request().Context(), body.Description, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"hashtags":   hc.Hashtags,
		"session_id": hc.ID,
	})
}

func (h *HashtagCtrl) GenerateFromURL(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}

	hc, err := h.s.GenerateFromURL(c.Request().Context(), body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"hashtags":   hc.Hashtags,
		"session_id": hc.ID,
	})
}

func (h *HashtagCtrl) Context(c echo.Context) error {
	hc, err := h.s.Context(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "세션을 찾을 수 없습니다"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, hc)
}
