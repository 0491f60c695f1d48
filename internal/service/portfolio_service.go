package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/cache"
	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

const portfolioCacheTTL = 5 * time.Minute

// PortfolioInput carries a full portfolio document for creation.
type PortfolioInput struct {
	Title        string
	Description  string
	Image        string
	Video        string
	Category     model.Category
	Technologies []string
	LiveURL      string
	GithubURL    string
	Featured     bool
	Order        int
}

// PortfolioPatch carries a partial update; nil fields retain prior values.
// The resulting document is validated as a whole before saving.
type PortfolioPatch struct {
	Title        *string
	Description  *string
	Image        *string
	Video        *string
	Category     *model.Category
	Technologies []string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
	Order        *int
}

// PortfolioService handles portfolio item operations. Public reads go through
// the cache; admin writes invalidate it.
type PortfolioService interface {
	List(ctx context.Context, filter repository.PortfolioFilter) ([]model.PortfolioItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error)
	Create(ctx context.Context, input PortfolioInput) (*model.PortfolioItem, error)
	Update(ctx context.Context, id uuid.UUID, patch PortfolioPatch) (*model.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type portfolioService struct {
	repo  repository.PortfolioRepository
	cache *cache.Client
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repo repository.PortfolioRepository, cacheClient *cache.Client) PortfolioService {
	return &portfolioService{repo: repo, cache: cacheClient}
}

// List returns items matching the filter, ordered for display. Results are
// cached per filter combination.
func (s *portfolioService) List(ctx context.Context, filter repository.PortfolioFilter) ([]model.PortfolioItem, error) {
	key := listCacheKey(filter)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var items []model.PortfolioItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}

	if data, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, key, data, portfolioCacheTTL)
	}
	return items, nil
}

// Get returns a single item or a not-found error.
func (s *portfolioService) Get(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	key := itemCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var item model.PortfolioItem
		if err := json.Unmarshal(data, &item); err == nil {
			return &item, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}

	if data, err := json.Marshal(item); err == nil {
		_ = s.cache.Set(ctx, key, data, portfolioCacheTTL)
	}
	return item, nil
}

// Create validates and stores a new item.
func (s *portfolioService) Create(ctx context.Context, input PortfolioInput) (*model.PortfolioItem, error) {
	item := &model.PortfolioItem{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		Video:        input.Video,
		Category:     input.Category,
		Technologies: input.Technologies,
		LiveURL:      input.LiveURL,
		GithubURL:    input.GithubURL,
		Featured:     input.Featured,
		Order:        input.Order,
	}

	if err := validatePortfolioItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create portfolio item: %w", err)
	}

	s.invalidate(ctx, item.ID)
	return item, nil
}

// Update applies the supplied fields and revalidates the whole document.
func (s *portfolioService) Update(ctx context.Context, id uuid.UUID, patch PortfolioPatch) (*model.PortfolioItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Video != nil {
		item.Video = *patch.Video
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Technologies != nil {
		item.Technologies = patch.Technologies
	}
	if patch.LiveURL != nil {
		item.LiveURL = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		item.GithubURL = *patch.GithubURL
	}
	if patch.Featured != nil {
		item.Featured = *patch.Featured
	}
	if patch.Order != nil {
		item.Order = *patch.Order
	}

	if err := validatePortfolioItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update portfolio item: %w", err)
	}

	s.invalidate(ctx, item.ID)
	return item, nil
}

// Delete detaches an item from storage.
func (s *portfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPortfolioNotFound
		}
		return fmt.Errorf("find portfolio item: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}

	s.invalidate(ctx, id)
	return nil
}

func validatePortfolioItem(item *model.PortfolioItem) error {
	fields := map[string]string{}
	if item.Title == "" {
		fields["title"] = "Please provide a title"
	} else if len(item.Title) > 100 {
		fields["title"] = "Title cannot be more than 100 characters"
	}
	if item.Description == "" {
		fields["description"] = "Please provide a description"
	} else if len(item.Description) > 1000 {
		fields["description"] = "Description cannot be more than 1000 characters"
	}
	if item.Image == "" {
		fields["image"] = "Please provide an image URL"
	}
	if !item.Category.Valid() {
		fields["category"] = "Category must be one of web, mobile, design, other"
	}
	if len(item.Technologies) == 0 {
		fields["technologies"] = "Please provide at least one technology"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

func itemCacheKey(id uuid.UUID) string {
	return "portfolio:item:" + id.String()
}

func listCacheKey(filter repository.PortfolioFilter) string {
	featured := "all"
	if filter.Featured != nil {
		featured = fmt.Sprintf("%t", *filter.Featured)
	}
	category := "all"
	if filter.Category != "" {
		category = string(filter.Category)
	}
	return fmt.Sprintf("portfolio:list:%s:%s", category, featured)
}

// invalidate drops the item entry and every cached listing combination. The
// key space is small and fixed, so enumerating it beats pattern scans.
func (s *portfolioService) invalidate(ctx context.Context, id uuid.UUID) {
	keys := []string{itemCacheKey(id)}
	categories := []string{"all", string(model.CategoryWeb), string(model.CategoryMobile), string(model.CategoryDesign), string(model.CategoryOther)}
	for _, c := range categories {
		for _, f := range []string{"all", "true", "false"} {
			keys = append(keys, fmt.Sprintf("portfolio:list:%s:%s", c, f))
		}
	}
	_ = s.cache.Delete(ctx, keys...)
}
