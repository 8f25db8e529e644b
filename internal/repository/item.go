package repository

import (
	"context"
	"errors"

	"folio/internal/cache"
	"folio/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines persistence operations for portfolio items.
type ItemRepository interface {
	ListByOwner(ctx context.Context, userID uint) ([]models.PortfolioItem, error)
	GetByID(ctx context.Context, id uint) (*models.PortfolioItem, error)
	Create(ctx context.Context, item *models.PortfolioItem) error
	Update(ctx context.Context, item *models.PortfolioItem) error
	Delete(ctx context.Context, id, ownerID uint) error
	IncrementViews(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository returns a new ItemRepository implementation.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// ListByOwner returns all items of one owner, newest first. The list is
// served cache-aside; every mutation in this repository invalidates it.
func (r *itemRepository) ListByOwner(ctx context.Context, userID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	key := cache.ItemsKey(userID)

	err := cache.Aside(ctx, key, &items, cache.ItemsTTL, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&items).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Portfolio item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItems(ctx, item.UserID)
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItems(ctx, item.UserID)
	return nil
}

// Delete removes the item only when it belongs to ownerID; the ownership
// filter is part of the statement so a foreign row can never be removed.
func (r *itemRepository) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.PortfolioItem{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Portfolio item", id)
	}
	cache.InvalidateItems(ctx, ownerID)
	return nil
}

func (r *itemRepository) IncrementViews(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.PortfolioItem{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
