package models

import "time"

// ContactMessage is a message sent by an (unauthenticated) visitor to the
// owner of a portfolio page. Only the recipient can read it.
type ContactMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	SenderName  string    `gorm:"not null" json:"sender_name"`
	SenderEmail string    `gorm:"not null" json:"sender_email"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
