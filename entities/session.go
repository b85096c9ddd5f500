package entities

import "time"

// Session tracks one background recommendation job per photo card.
//
// Status values:
//   - pending: created, job not started yet
//   - processing: curation in progress
//   - completed: Recommendation is set
//   - failed: ErrorMessage is set
type Session struct {
	ID             string          `gorm:"primaryKey;size:36" json:"session_id"`
	PhotoCardID    string          `gorm:"size:36;not null;uniqueIndex" json:"photo_card_id"`
	Status         string          `gorm:"size:20;not null;index;default:pending" json:"status"`
	Query          string          `gorm:"type:text" json:"query"`
	AreaCode       string          `gorm:"size:10" json:"area_code,omitempty"`
	SigunguCode    string          `gorm:"size:10" json:"sigungu_code,omitempty"`
	Recommendation *Recommendation `gorm:"serializer:json" json:"recommendation,omitempty"`
	ErrorMessage   string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	LastAccessedAt time.Time       `json:"last_accessed_at"`
}

// HashtagContext is the durable replacement for the old in-process session map:
// the description/hashtag pair generated before a card is created, reused as
// context for later recommendations.
type HashtagContext struct {
	ID          string    `gorm:"primaryKey;size:8" json:"session_id"`
	Description string    `gorm:"type:text" json:"description"`
	Hashtags    []string  `gorm:"serializer:json" json:"hashtags"`
	SourceURL   string    `gorm:"size:255" json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
