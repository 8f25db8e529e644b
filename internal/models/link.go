package models

import "time"

// Platform identifies the social network a link points at.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformGitHub    Platform = "github"
	PlatformInstagram Platform = "instagram"
)

// IsValid reports whether the platform is one of the known values.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedIn, PlatformGitHub, PlatformInstagram:
		return true
	}
	return false
}

// SocialLink is a social profile link shown on a user's public portfolio.
type SocialLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Platform  Platform  `gorm:"not null" json:"platform"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
