package entities

import "time"

type Review struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PlaceID     string    `gorm:"size:36;not null;index" json:"place_id"`
	PlaceName   string    `gorm:"size:100;not null" json:"place_name"`
	Rating      int       `gorm:"not null" json:"rating"` // 1..5
	Content     string    `gorm:"type:text;not null" json:"content"`
	UserID      string    `gorm:"size:100;index" json:"user_id,omitempty"`
	PhotoCardID string    `gorm:"size:36;index" json:"photo_card_id,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
