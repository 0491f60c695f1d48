package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/model"
)

// PortfolioFilter narrows portfolio listings. Zero values mean "no filter".
type PortfolioFilter struct {
	Category model.Category
	Featured *bool
}

// PortfolioRepository defines portfolio persistence operations.
type PortfolioRepository interface {
	Create(ctx context.Context, item *model.PortfolioItem) error
	Update(ctx context.Context, item *model.PortfolioItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error)
	Find(ctx context.Context, filter PortfolioFilter) ([]model.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository builds a GORM-backed repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *portfolioRepository) Update(ctx context.Context, item *model.PortfolioItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	var item model.PortfolioItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Find lists items ordered by display order ascending, then newest first.
func (r *portfolioRepository) Find(ctx context.Context, filter PortfolioFilter) ([]model.PortfolioItem, error) {
	q := r.db.WithContext(ctx).Model(&model.PortfolioItem{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}

	var items []model.PortfolioItem
	if err := q.Order("display_order ASC").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PortfolioItem{}).Error
}
