package controllerImp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mannam/entities"
	"mannam/pkg/area"
	"mannam/pkg/course"
	"mannam/pkg/tour"
)

// Searcher matches the tour client's combined fetch.
type Searcher interface {
	Combined(ctx context.Context, keyword, areaCode, sigunguCode string) (*tour.Combined, error)
}

// RecommendCtrl serves the synchronous recommendation path: straight search
// plus merge, no LLM and no session.
type RecommendCtrl struct {
	search Searcher
}

func New(search Searcher) *RecommendCtrl { return &RecommendCtrl{search: search} }

type recommendRequest struct {
	Destination string `json:"destination"`
	Sigungu     string `json:"sigungu"`
	Theme       string `json:"theme"`
}

func (h *RecommendCtrl) Recommend(c echo.Context) error {
	var body recommendRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if strings.TrimSpace(body.Destination) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "destination required"})
	}
	keyword := strings.TrimSpace(body.Theme)
	if keyword == "" {
		keyword = "관광"
	}

	var areaCode, sigunguCode string
	if kor, _, ok := area.Codes(body.Destination); ok {
		areaCode = kor
		if sigKor, _, ok := area.SigunguCodes(kor, body.Sigungu); ok {
			sigunguCode = sigKor
		}
	}

	combined, err := h.search.Combined(c.Request().Context(), keyword, areaCode, sigunguCode)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	if len(combined.Keyword) == 0 && len(combined.Related) == 0 {
		return c.JSON(http.StatusOK, map[string]any{
			"courses": []entities.Course{},
			"message": fmt.Sprintf("'%s'에서 '%s' 관련 정보를 찾지 못했습니다.", body.Destination, keyword),
		})
	}

	merged := course.Merge(combined.Keyword, combined.Related, keyword)
	return c.JSON(http.StatusOK, map[string]any{
		"courses": []entities.Course{*merged},
		"message": fmt.Sprintf("'%s' %s 테마 여행 코스입니다.", body.Destination, keyword),
	})
}
