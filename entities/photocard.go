package entities

import "time"

type PhotoCard struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:100;index" json:"user_id,omitempty"`
	Province  string     `gorm:"size:50;not null" json:"province"`
	City      string     `gorm:"size:50;not null" json:"city"`
	Message   string     `gorm:"type:text" json:"message,omitempty"`
	Hashtags  []string   `gorm:"serializer:json" json:"hashtags,omitempty"`
	AIQuote   string     `gorm:"type:text" json:"ai_quote,omitempty"`
	ImagePath string     `gorm:"size:255" json:"image_path,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`
}
