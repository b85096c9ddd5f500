package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mannam/database"
	"mannam/entities"
	"mannam/pkg/session"
	"mannam/pkg/session/repository"
)

func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return New(db)
}

func TestCreateStartsPending(t *testing.T) {
	repo := newTestRepo(t)

	s, err := repo.Create("card-1", "강릉 바다 코스", "32", "1")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.Equal(t, session.StatusPending, s.Status)
	require.Nil(t, s.Recommendation)
	require.Empty(t, s.ErrorMessage)
	require.Nil(t, s.CompletedAt)
}

func TestCreateRejectsSecondSessionPerCard(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Create("card-1", "q", "", "")
	require.NoError(t, err)

	_, err = repo.Create("card-1", "q2", "", "")
	require.ErrorIs(t, err, session.ErrDuplicateCard)

	// other cards are unaffected
	_, err = repo.Create("card-2", "q", "", "")
	require.NoError(t, err)
}

func TestTransitionHappyPath(t *testing.T) {
	repo := newTestRepo(t)
	s, err := repo.Create("card-1", "q", "", "")
	require.NoError(t, err)

	require.NoError(t, repo.Transition(s.ID, session.StatusProcessing, nil, ""))

	rec := &entities.Recommendation{
		Spots:   []entities.Spot{{Name: "경포해변"}},
		Message: "1개의 장소를 찾았습니다.",
	}
	require.NoError(t, repo.Transition(s.ID, session.StatusCompleted, rec, ""))

	got, err := repo.ByID(s.ID)
	require.NoError(t, err)
	require.Equal(t, session.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.Recommendation)
	require.Equal(t, "경포해변", got.Recommendation.Spots[0].Name)
	require.Empty(t, got.ErrorMessage)
}

func TestTransitionToFailedKeepsErrorOnly(t *testing.T) {
	repo := newTestRepo(t)
	s, _ := repo.Create("card-1", "q", "", "")
	require.NoError(t, repo.Transition(s.ID, session.StatusProcessing, nil, ""))
	require.NoError(t, repo.Transition(s.ID, session.StatusFailed, nil, "추천 요청 실패"))

	got, err := repo.ByID(s.ID)
	require.NoError(t, err)
	require.Equal(t, session.StatusFailed, got.Status)
	require.Equal(t, "추천 요청 실패", got.ErrorMessage)
	require.Nil(t, got.Recommendation)
	require.Nil(t, got.CompletedAt)
}

func TestTransitionRejectsIllegalEdges(t *testing.T) {
	repo := newTestRepo(t)
	s, _ := repo.Create("card-1", "q", "", "")

	// pending cannot jump straight to a terminal state
	err := repo.Transition(s.ID, session.StatusCompleted, nil, "")
	require.ErrorIs(t, err, session.ErrInvalidTransition)

	require.NoError(t, repo.Transition(s.ID, session.StatusProcessing, nil, ""))
	// claiming twice loses: the at-most-one-job guard
	err = repo.Transition(s.ID, session.StatusProcessing, nil, "")
	require.ErrorIs(t, err, session.ErrInvalidTransition)

	require.NoError(t, repo.Transition(s.ID, session.StatusFailed, nil, "boom"))
	// terminal states have no exits
	err = repo.Transition(s.ID, session.StatusCompleted, nil, "")
	require.ErrorIs(t, err, session.ErrInvalidTransition)
	err = repo.Transition(s.ID, session.StatusProcessing, nil, "")
	require.ErrorIs(t, err, session.ErrInvalidTransition)
}

func TestTransitionUnknownSession(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Transition("nope", session.StatusProcessing, nil, "")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestByPhotoCardAndTouch(t *testing.T) {
	repo := newTestRepo(t)
	s, _ := repo.Create("card-1", "q", "", "")

	got, err := repo.ByPhotoCard("card-1")
	require.NoError(t, err)
	require.Equal(t, s.ID, got.ID)

	_, err = repo.ByPhotoCard("card-2")
	require.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, repo.Touch(s.ID))
	after, err := repo.ByID(s.ID)
	require.NoError(t, err)
	require.False(t, after.LastAccessedAt.Before(got.LastAccessedAt))
}
