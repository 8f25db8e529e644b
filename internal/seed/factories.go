// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"folio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var contentTypes = []models.ContentType{
	models.ContentTypeImage,
	models.ContentTypeProject,
	models.ContentTypeBlog,
	models.ContentTypeVideo,
}

var platforms = []models.Platform{
	models.PlatformTwitter,
	models.PlatformLinkedIn,
	models.PlatformGitHub,
	models.PlatformInstagram,
}

var tagPool = []string{
	"design", "web", "photography", "golang", "react", "illustration",
	"branding", "writing", "open-source", "ui", "motion", "typography",
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s-%s%d", first, last, gofakeit.Number(10, 99)))

	user := &models.User{
		Username:      username,
		Email:         gofakeit.Email(),
		DisplayName:   first + " " + last,
		Bio:           gofakeit.Sentence(12),
		AvatarURL:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CoverImageURL: fmt.Sprintf("https://picsum.photos/seed/cover-%s/1200/400", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "Password123!"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateItem constructs and persists a sample portfolio item for the given user.
func (f *Factory) CreateItem(user *models.User, overrides ...func(*models.PortfolioItem)) (*models.PortfolioItem, error) {
	contentType := contentTypes[f.rng.Intn(len(contentTypes))]

	item := &models.PortfolioItem{
		UserID:      user.ID,
		ContentType: contentType,
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 8, "\n"),
		Tags:        f.randomTags(),
		ViewCount:   f.rng.Intn(500),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	item.CreatedAt = time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour)

	switch contentType {
	case models.ContentTypeImage:
		item.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	case models.ContentTypeProject:
		item.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		item.ProjectURL = gofakeit.URL()
	case models.ContentTypeBlog:
		item.ProjectURL = gofakeit.URL()
	case models.ContentTypeVideo:
		youtubeIDs := []string{"dQw4w9WgXcQ", "9bZkp7q19f0", "3JZ_D3ELwOQ", "L_jWHffIx5E"}
		id := youtubeIDs[f.rng.Intn(len(youtubeIDs))]
		item.VideoURL = fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
		item.ImageURL = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
	}

	for _, override := range overrides {
		override(item)
	}

	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CreateLink constructs and persists a social link for the given user.
func (f *Factory) CreateLink(user *models.User, platform models.Platform) (*models.SocialLink, error) {
	handle := strings.ToLower(gofakeit.Username())

	var url string
	switch platform {
	case models.PlatformTwitter:
		url = "https://twitter.com/" + handle
	case models.PlatformLinkedIn:
		url = "https://linkedin.com/in/" + handle
	case models.PlatformGitHub:
		url = "https://github.com/" + handle
	case models.PlatformInstagram:
		url = "https://instagram.com/" + handle
	}

	link := &models.SocialLink{
		UserID:   user.ID,
		Platform: platform,
		URL:      url,
	}

	if err := f.db.Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

// CreateMessage constructs and persists a contact message for the given user.
func (f *Factory) CreateMessage(user *models.User, overrides ...func(*models.ContactMessage)) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		UserID:      user.ID,
		SenderName:  gofakeit.Name(),
		SenderEmail: gofakeit.Email(),
		Message:     gofakeit.Paragraph(1, 2, 6, " "),
		Read:        f.rng.Intn(3) == 0,
	}

	for _, override := range overrides {
		override(msg)
	}

	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (f *Factory) randomTags() models.TagList {
	n := 1 + f.rng.Intn(3)
	tags := make(models.TagList, 0, n)
	seen := map[string]bool{}
	for len(tags) < n {
		tag := tagPool[f.rng.Intn(len(tagPool))]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
