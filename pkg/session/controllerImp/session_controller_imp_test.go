package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"mannam/database"
	"mannam/entities"
	"mannam/pkg/session"
	sessrepo "mannam/pkg/session/repository"
	sessImp "mannam/pkg/session/repositoryImp"

	cardrepo "mannam/pkg/photocard/repository"
	cardImp "mannam/pkg/photocard/repositoryImp"
)

type recordingStarter struct {
	mu      sync.Mutex
	started []string
	query   string
	area    string
	sigungu string
}

func (r *recordingStarter) Start(sessionID, query, areaCode, sigunguCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, sessionID)
	r.query, r.area, r.sigungu = query, areaCode, sigunguCode
}

func newTestCtrl(t *testing.T) (*SessionCtrl, sessrepo.SessionRepository, cardrepo.PhotoCardRepository, *recordingStarter) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	sessions := sessImp.New(db)
	cards := cardImp.New(db)
	starter := &recordingStarter{}
	return New(sessions, cards, starter), sessions, cards, starter
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, body, cardID string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("photo_card_id")
	c.SetParamValues(cardID)
	require.NoError(t, handler(c))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func activeCard(t *testing.T, cards cardrepo.PhotoCardRepository) *entities.PhotoCard {
	t.Helper()
	card := &entities.PhotoCard{
		ID:       "card-1",
		Province: "강원특별자치도",
		City:     "강릉시",
		Message:  "바다 보고 커피 마시기",
		Hashtags: []string{"#강릉", "#바다"},
		IsActive: true,
	}
	require.NoError(t, cards.Create(card))
	return card
}

func TestSubmitAcceptsAndStartsJob(t *testing.T) {
	ctrl, sessions, cards, starter := newTestCtrl(t)
	activeCard(t, cards)

	rec, resp := doRequest(t, ctrl.Submit, http.MethodPost, "", "card-1")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "pending", resp["status"])
	require.Equal(t, "card-1", resp["photo_card_id"])
	require.NotEmpty(t, resp["session_id"])

	require.Len(t, starter.started, 1)
	require.Equal(t, resp["session_id"], starter.started[0])
	// default query is assembled from the card, region resolved to codes
	require.Contains(t, starter.query, "강원특별자치도")
	require.Contains(t, starter.query, "여행 코스 추천")
	require.Equal(t, "32", starter.area)
	require.Equal(t, "1", starter.sigungu)

	s, err := sessions.ByPhotoCard("card-1")
	require.NoError(t, err)
	require.Equal(t, session.StatusPending, s.Status)
}

func TestSubmitHonorsExplicitQueryAndCodes(t *testing.T) {
	ctrl, _, cards, starter := newTestCtrl(t)
	activeCard(t, cards)

	body := `{"query":"조용한 카페 위주로","area_code":"39","sigungu_code":"2"}`
	rec, _ := doRequest(t, ctrl.Submit, http.MethodPost, body, "card-1")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "조용한 카페 위주로", starter.query)
	require.Equal(t, "39", starter.area)
	require.Equal(t, "2", starter.sigungu)
}

func TestSubmitUnknownCard(t *testing.T) {
	ctrl, _, _, starter := newTestCtrl(t)

	rec, resp := doRequest(t, ctrl.Submit, http.MethodPost, "", "ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Invalid or inactive PhotoCard", resp["error"])
	require.Empty(t, starter.started)
}

func TestSubmitDuplicateCardConflicts(t *testing.T) {
	ctrl, _, cards, starter := newTestCtrl(t)
	activeCard(t, cards)

	rec, _ := doRequest(t, ctrl.Submit, http.MethodPost, "", "card-1")
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec, resp := doRequest(t, ctrl.Submit, http.MethodPost, "", "card-1")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "이미 추천이 진행중입니다", resp["error"])
	require.Len(t, starter.started, 1)
}

func TestStatusReflectsLifecycle(t *testing.T) {
	ctrl, sessions, cards, _ := newTestCtrl(t)
	activeCard(t, cards)
	s, err := sessions.Create("card-1", "q", "", "")
	require.NoError(t, err)

	rec, resp := doRequest(t, ctrl.Status, http.MethodGet, "", "card-1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pending", resp["status"])
	require.Equal(t, "추천 요청 대기중...", resp["message"])

	require.NoError(t, sessions.Transition(s.ID, session.StatusProcessing, nil, ""))
	_, resp = doRequest(t, ctrl.Status, http.MethodGet, "", "card-1")
	require.Equal(t, "AI가 여행 코스를 분석하고 있어요...", resp["message"])

	require.NoError(t, sessions.Transition(s.ID, session.StatusFailed, nil, "추천 요청 시간 초과"))
	_, resp = doRequest(t, ctrl.Status, http.MethodGet, "", "card-1")
	require.Equal(t, "failed", resp["status"])
	require.Equal(t, "추천 요청 시간 초과", resp["message"])
}

func TestStatusUnknownCard(t *testing.T) {
	ctrl, _, _, _ := newTestCtrl(t)

	rec, resp := doRequest(t, ctrl.Status, http.MethodGet, "", "ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Session not found for this photo card", resp["error"])
}

func TestRecommendationPayloadOnlyWhenCompleted(t *testing.T) {
	ctrl, sessions, cards, _ := newTestCtrl(t)
	activeCard(t, cards)
	s, err := sessions.Create("card-1", "q", "", "")
	require.NoError(t, err)

	// not completed yet: empty spots, nil course
	rec, resp := doRequest(t, ctrl.Recommendation, http.MethodGet, "", "card-1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp["spots"])
	require.Nil(t, resp["course"])
	require.Nil(t, resp["completed_at"])

	require.NoError(t, sessions.Transition(s.ID, session.StatusProcessing, nil, ""))
	require.NoError(t, sessions.Transition(s.ID, session.StatusCompleted, &entities.Recommendation{
		Spots: []entities.Spot{{Name: "경포해변"}},
		Course: &entities.Course{
			Title: "강릉 코스",
			Stops: []entities.CourseStop{{Order: 1, Name: "경포해변"}},
		},
	}, ""))

	_, resp = doRequest(t, ctrl.Recommendation, http.MethodGet, "", "card-1")
	require.Equal(t, "completed", resp["status"])
	require.NotNil(t, resp["completed_at"])
	spots := resp["spots"].([]any)
	require.Len(t, spots, 1)
	course := resp["course"].(map[string]any)
	require.Equal(t, "강릉 코스", course["title"])
	// empty provider message falls back to the spot count
	require.Equal(t, "1개의 장소를 찾았습니다.", resp["message"])
}

func TestPollingTouchesSession(t *testing.T) {
	ctrl, sessions, cards, _ := newTestCtrl(t)
	activeCard(t, cards)
	s, err := sessions.Create("card-1", "q", "", "")
	require.NoError(t, err)
	before, err := sessions.ByID(s.ID)
	require.NoError(t, err)

	doRequest(t, ctrl.Status, http.MethodGet, "", "card-1")

	after, err := sessions.ByID(s.ID)
	require.NoError(t, err)
	require.False(t, after.LastAccessedAt.Before(before.LastAccessedAt))
}
