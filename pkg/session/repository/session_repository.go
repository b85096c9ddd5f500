package repository

import "mannam/entities"

type SessionRepository interface {
	// Create inserts a pending session. Returns session.ErrDuplicateCard when
	// a session already exists for the photo card.
	Create(photoCardID, query, areaCode, sigunguCode string) (*entities.Session, error)

	// Transition moves the session to target with a compare-and-swap on the
	// current status. rec is persisted only for "completed", errMsg only for
	// "failed". Returns session.ErrInvalidTransition or session.ErrNotFound.
	Transition(id, target string, rec *entities.Recommendation, errMsg string) error

	ByID(id string) (*entities.Session, error)
	ByPhotoCard(photoCardID string) (*entities.Session, error)

	// Touch updates last_accessed_at; called on every polling read.
	Touch(id string) error
}
