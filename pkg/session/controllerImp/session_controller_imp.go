package controllerImp

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/area"
	"mannam/pkg/session"
	sessrepo "mannam/pkg/session/repository"

	cardrepo "mannam/pkg/photocard/repository"
)

// Starter is the orchestrator surface the HTTP layer needs: fire-and-forget.
type Starter interface {
	Start(sessionID, query, areaCode, sigunguCode string)
}

type SessionCtrl struct {
	sessions sessrepo.SessionRepository
	cards    cardrepo.PhotoCardRepository
	orch     Starter
}

func New(sessions sessrepo.SessionRepository, cards cardrepo.PhotoCardRepository, orch Starter) *SessionCtrl {
	return &SessionCtrl{sessions: sessions, cards: cards, orch: orch}
}

type submitRequest struct {
	Query       string `json:"query"`
	AreaCode    string `json:"area_code"`
	SigunguCode string `json:"sigungu_code"`
}

// Submit creates the session for a photo card and hands it to the
// orchestrator. One active session per card; repeats get 409.
func (h *SessionCtrl) Submit(c echo.Context) error {
	cardID := c.Param("photo_card_id")
	card, err := h.cards.ByID(cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Invalid or inactive PhotoCard"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var body submitRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	query := strings.TrimSpace(body.Query)
	if query == "" {
		query = defaultQuery(card)
	}
	areaCode, sigunguCode := body.AreaCode, body.SigunguCode
	if areaCode == "" {
		if kor, _, ok := area.Codes(card.Province); ok {
			areaCode = kor
			if sigKor, _, ok := area.SigunguCodes(kor, card.City); ok && sigunguCode == "" {
				sigunguCode = sigKor
			}
		}
	}

	s, err := h.sessions.Create(cardID, query, areaCode, sigunguCode)
	if err != nil {
		if errors.Is(err, session.ErrDuplicateCard) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "이미 추천이 진행중입니다"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.orch.Start(s.ID, s.Query, s.AreaCode, s.SigunguCode)

	return c.JSON(http.StatusAccepted, map[string]string{
		"session_id":    s.ID,
		"photo_card_id": s.PhotoCardID,
		"status":        s.Status,
	})
}

// Status is the lightweight polling read.
func (h *SessionCtrl) Status(c echo.Context) error {
	s, err := h.lookupAndTouch(c.Param("photo_card_id"))
	if err != nil {
		return h.notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"session_id":    s.ID,
		"photo_card_id": s.PhotoCardID,
		"status":        s.Status,
		"message":       statusMessage(s),
	})
}

// Recommendation returns the full payload once the session completed.
func (h *SessionCtrl) Recommendation(c echo.Context) error {
	s, err := h.lookupAndTouch(c.Param("photo_card_id"))
	if err != nil {
		return h.notFoundOr500(c, err)
	}

	resp := map[string]any{
		"session_id":    s.ID,
		"photo_card_id": s.PhotoCardID,
		"status":        s.Status,
		"spots":         []entities.Spot{},
		"course":        nil,
		"message":       statusMessage(s),
		"created_at":    s.CreatedAt,
		"completed_at":  s.CompletedAt,
	}
	if s.Status == session.StatusCompleted && s.Recommendation != nil {
		rec := s.Recommendation
		resp["spots"] = rec.Spots
		resp["course"] = rec.Course
		if rec.Message != "" {
			resp["message"] = rec.Message
		} else {
			resp["message"] = fmt.Sprintf("%d개의 장소를 찾았습니다.", len(rec.Spots))
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SessionCtrl) lookupAndTouch(cardID string) (*entities.Session, error) {
	s, err := h.sessions.ByPhotoCard(cardID)
	if err != nil {
		return nil, err
	}
	_ = h.sessions.Touch(s.ID)
	return s, nil
}

func (h *SessionCtrl) notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found for this photo card"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func statusMessage(s *entities.Session) string {
	switch s.Status {
	case session.StatusPending:
		return "추천 요청 대기중..."
	case session.StatusProcessing:
		return "AI가 여행 코스를 분석하고 있어요..."
	case session.StatusCompleted:
		return "추천 완료!"
	case session.StatusFailed:
		if s.ErrorMessage != "" {
			return s.ErrorMessage
		}
		return "추천 요청 실패"
	}
	return ""
}

func defaultQuery(card *entities.PhotoCard) string {
	parts := []string{card.Province, card.City}
	if card.Message != "" {
		parts = append(parts, card.Message)
	}
	if len(card.Hashtags) > 0 {
		parts = append(parts, strings.Join(card.Hashtags, " "))
	}
	parts = append(parts, "여행 코스 추천")
	return strings.Join(parts, " ")
}
