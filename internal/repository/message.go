package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for contact messages.
// Messages are never cached; the recipient always sees a fresh list.
type MessageRepository interface {
	ListByOwner(ctx context.Context, userID uint) ([]models.ContactMessage, error)
	Create(ctx context.Context, msg *models.ContactMessage) error
	MarkRead(ctx context.Context, id, ownerID uint) error
	Delete(ctx context.Context, id, ownerID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// ListByOwner returns all messages addressed to one owner, newest first.
func (r *messageRepository) ListByOwner(ctx context.Context, userID uint) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("read", true)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Message", id)
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.ContactMessage{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Message", id)
	}
	return nil
}
