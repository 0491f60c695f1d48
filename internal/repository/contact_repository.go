package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/model"
)

// ContactRepository defines contact message persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	Update(ctx context.Context, msg *model.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Find(ctx context.Context, status model.ContactStatus) ([]model.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactRepository) Update(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// Find lists messages newest first, optionally filtered by status.
func (r *contactRepository) Find(ctx context.Context, status model.ContactStatus) ([]model.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&model.ContactMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var msgs []model.ContactMessage
	if err := q.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
