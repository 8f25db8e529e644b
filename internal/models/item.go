package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ContentType categorizes a portfolio item.
type ContentType string

const (
	ContentTypeImage   ContentType = "image"
	ContentTypeProject ContentType = "project"
	ContentTypeBlog    ContentType = "blog"
	ContentTypeVideo   ContentType = "video"
)

// IsValid reports whether the content type is one of the known values.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeImage, ContentTypeProject, ContentTypeBlog, ContentTypeVideo:
		return true
	}
	return false
}

// TagList is an ordered list of free-form tags, stored as a JSON column.
type TagList []string

// ParseTags splits a comma-separated tag input, trimming each entry and
// dropping empty segments. "design,, web" yields ["design","web"].
func ParseTags(input string) TagList {
	parts := strings.Split(input, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Value implements driver.Valuer for GORM serialization.
func (l TagList) Value() (driver.Value, error) {
	if l == nil {
		l = TagList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for GORM deserialization.
func (l *TagList) Scan(value interface{}) error {
	if value == nil {
		*l = TagList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported tag list column type %T", value)
	}
}

// PortfolioItem is a single piece of work on a user's portfolio page.
type PortfolioItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	ContentType ContentType    `gorm:"not null" json:"content_type"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ImageURL    string         `json:"image_url"`
	ProjectURL  string         `json:"project_url,omitempty"`
	VideoURL    string         `json:"video_url,omitempty"`
	Tags        TagList        `gorm:"type:text" json:"tags"`
	ViewCount   int            `gorm:"default:0" json:"view_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// FilterItemsByType returns the subset of items matching the given content
// type. An empty type or "all" returns the input unchanged. The transform is
// pure; it never triggers another fetch.
func FilterItemsByType(items []PortfolioItem, contentType ContentType) []PortfolioItem {
	if contentType == "" || contentType == "all" {
		return items
	}
	filtered := make([]PortfolioItem, 0, len(items))
	for _, item := range items {
		if item.ContentType == contentType {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
