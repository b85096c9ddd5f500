// Package session defines the recommendation session lifecycle: the status
// machine and the errors its store can return.
package session

import "github.com/pkg/errors"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

var (
	// ErrDuplicateCard: an active session already exists for the photo card.
	ErrDuplicateCard = errors.New("session already exists for photo card")
	// ErrInvalidTransition: the target status is not reachable from the
	// session's current status.
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrNotFound          = errors.New("session not found")
)

// transitions holds the only legal edges. Terminal states have no exits.
var transitions = map[string]string{
	StatusProcessing: StatusPending,
	StatusCompleted:  StatusProcessing,
	StatusFailed:     StatusProcessing,
}

// Source returns the single status a session must be in before moving to
// target. ok is false for unknown targets (including "pending", which is only
// ever set at creation).
func Source(target string) (from string, ok bool) {
	from, ok = transitions[target]
	return from, ok
}

func CanTransition(from, to string) bool {
	src, ok := transitions[to]
	return ok && src == from
}

func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}
