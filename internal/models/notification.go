package models

import "time"

// Notification records a social event addressed to a user.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type"` // e.g. "follow"
	ActorID     string    `json:"actor_id" gorm:"index"`
	RecipientID string    `json:"recipient_id" gorm:"index"`
	Message     string    `json:"message"`
	Read        bool      `json:"read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
