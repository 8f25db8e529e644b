package repository

import (
	"context"

	"folio/internal/cache"
	"folio/internal/models"

	"gorm.io/gorm"
)

// LinkRepository defines persistence operations for social links.
type LinkRepository interface {
	ListByOwner(ctx context.Context, userID uint) ([]models.SocialLink, error)
	Create(ctx context.Context, link *models.SocialLink) error
	Delete(ctx context.Context, id, ownerID uint) error
}

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository returns a new LinkRepository implementation.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// ListByOwner returns one owner's links in insertion order, cache-aside.
func (r *linkRepository) ListByOwner(ctx context.Context, userID uint) ([]models.SocialLink, error) {
	var links []models.SocialLink
	key := cache.LinksKey(userID)

	err := cache.Aside(ctx, key, &links, cache.LinksTTL, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at ASC, id ASC").
			Find(&links).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return links, nil
}

func (r *linkRepository) Create(ctx context.Context, link *models.SocialLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateLinks(ctx, link.UserID)
	return nil
}

func (r *linkRepository) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.SocialLink{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Social link", id)
	}
	cache.InvalidateLinks(ctx, ownerID)
	return nil
}
