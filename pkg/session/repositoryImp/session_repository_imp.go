package repositoryImp

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/session"
	"mannam/pkg/session/repository"
)

type sessionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SessionRepository { return &sessionRepo{db} }

func (r *sessionRepo) Create(photoCardID, query, areaCode, sigunguCode string) (*entities.Session, error) {
	now := time.Now()
	s := &entities.Session{
		ID:             uuid.NewString(),
		PhotoCardID:    photoCardID,
		Status:         session.StatusPending,
		Query:          query,
		AreaCode:       areaCode,
		SigunguCode:    sigunguCode,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	if err := r.db.Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, session.ErrDuplicateCard
		}
		return nil, errors.Wrap(err, "create session")
	}
	return s, nil
}

func (r *sessionRepo) Transition(id, target string, rec *entities.Recommendation, errMsg string) error {
	from, ok := session.Source(target)
	if !ok {
		return errors.Wrapf(session.ErrInvalidTransition, "unknown target %q", target)
	}

	updates := map[string]any{"status": target}
	switch target {
	case session.StatusCompleted:
		updates["recommendation"] = rec
		updates["completed_at"] = time.Now()
	case session.StatusFailed:
		updates["error_message"] = errMsg
	}

	// Compare-and-swap on the current status so a stale writer loses the race
	// instead of clobbering a terminal state.
	res := r.db.Model(&entities.Session{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return errors.Wrap(res.Error, "transition session")
	}
	if res.RowsAffected == 0 {
		cur, err := r.ByID(id)
		if err != nil {
			return err
		}
		return errors.Wrapf(session.ErrInvalidTransition, "%s -> %s", cur.Status, target)
	}
	return nil
}

func (r *sessionRepo) ByID(id string) (*entities.Session, error) {
	var s entities.Session
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Wrap(err, "session by id")
	}
	return &s, nil
}

func (r *sessionRepo) ByPhotoCard(photoCardID string) (*entities.Session, error) {
	var s entities.Session
	if err := r.db.Where("photo_card_id = ?", photoCardID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Wrap(err, "session by photo card")
	}
	return &s, nil
}

func (r *sessionRepo) Touch(id string) error {
	return r.db.Model(&entities.Session{}).
		Where("id = ?", id).
		Update("last_accessed_at", time.Now()).Error
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
