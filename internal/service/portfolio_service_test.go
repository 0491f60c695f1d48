package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

// MockPortfolioRepository is a mock implementation of PortfolioRepository.
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, item *model.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) Find(ctx context.Context, filter repository.PortfolioFilter) ([]model.PortfolioItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validPortfolioInput() PortfolioInput {
	return PortfolioInput{
		Title:        "Demo Project",
		Description:  "A demo project",
		Image:        "https://example.com/demo.png",
		Category:     model.CategoryWeb,
		Technologies: []string{"Go", "React"},
	}
}

func TestPortfolioService_Create(t *testing.T) {
	t.Run("stores a valid item", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PortfolioItem")).Return(nil)

		svc := NewPortfolioService(mockRepo, nil)
		item, err := svc.Create(context.Background(), validPortfolioInput())

		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "Demo Project", item.Title)
		assert.NotEqual(t, uuid.Nil, item.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		input := validPortfolioInput()
		input.Category = "painting"

		svc := NewPortfolioService(mockRepo, nil)
		_, err := svc.Create(context.Background(), input)

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "category")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects empty technologies", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		input := validPortfolioInput()
		input.Technologies = nil

		svc := NewPortfolioService(mockRepo, nil)
		_, err := svc.Create(context.Background(), input)

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "technologies")
	})
}

func TestPortfolioService_List(t *testing.T) {
	featured := true
	filter := repository.PortfolioFilter{Category: model.CategoryWeb, Featured: &featured}

	mockRepo := new(MockPortfolioRepository)
	mockRepo.On("Find", mock.Anything, filter).Return([]model.PortfolioItem{
		{Title: "A", Featured: true},
		{Title: "B", Featured: true},
	}, nil)

	svc := NewPortfolioService(mockRepo, nil)
	items, err := svc.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	mockRepo.AssertExpectations(t)
}

func TestPortfolioService_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.PortfolioItem{ID: id, Title: "Demo"}, nil)

		svc := NewPortfolioService(mockRepo, nil)
		item, err := svc.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, item.ID)
	})

	t.Run("absent", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPortfolioService(mockRepo, nil)
		_, err := svc.Get(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
	})
}

func TestPortfolioService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("changes only supplied fields", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.PortfolioItem{
			ID:           id,
			Title:        "Old Title",
			Description:  "Old description",
			Image:        "https://example.com/old.png",
			Category:     model.CategoryWeb,
			Technologies: []string{"Go"},
			Order:        3,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PortfolioItem")).Return(nil)

		newTitle := "New Title"
		svc := NewPortfolioService(mockRepo, nil)
		item, err := svc.Update(context.Background(), id, PortfolioPatch{Title: &newTitle})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", item.Title)
		assert.Equal(t, "Old description", item.Description)
		assert.Equal(t, 3, item.Order)
		mockRepo.AssertExpectations(t)
	})

	t.Run("revalidates the whole document", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.PortfolioItem{
			ID:           id,
			Title:        "Old Title",
			Description:  "Old description",
			Image:        "https://example.com/old.png",
			Category:     model.CategoryWeb,
			Technologies: []string{"Go"},
		}, nil)

		svc := NewPortfolioService(mockRepo, nil)
		_, err := svc.Update(context.Background(), id, PortfolioPatch{Technologies: []string{}})

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "technologies")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("absent", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPortfolioService(mockRepo, nil)
		_, err := svc.Update(context.Background(), id, PortfolioPatch{})

		assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
	})
}

func TestPortfolioService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deletes an existing item", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.PortfolioItem{ID: id}, nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		svc := NewPortfolioService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), id))
		mockRepo.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPortfolioService(mockRepo, nil)
		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
