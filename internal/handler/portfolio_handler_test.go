package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/handler"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/service"
)

// MockPortfolioService is a mock implementation of service.PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) List(ctx context.Context, filter repository.PortfolioFilter) ([]model.PortfolioItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Get(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Create(ctx context.Context, input service.PortfolioInput) (*model.PortfolioItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id uuid.UUID, patch service.PortfolioPatch) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPortfolioHandler_List_ParsesFilters(t *testing.T) {
	mockSvc := new(MockPortfolioService)
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f repository.PortfolioFilter) bool {
		return f.Category == model.CategoryWeb && f.Featured != nil && *f.Featured
	})).Return([]model.PortfolioItem{{Title: "A"}, {Title: "B"}}, nil)

	h := handler.NewPortfolioHandler(mockSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio?category=web&featured=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
	mockSvc.AssertExpectations(t)
}

func TestPortfolioHandler_List_NoFilters(t *testing.T) {
	mockSvc := new(MockPortfolioService)
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f repository.PortfolioFilter) bool {
		return f.Category == "" && f.Featured == nil
	})).Return([]model.PortfolioItem{}, nil)

	h := handler.NewPortfolioHandler(mockSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.List(c))
	mockSvc.AssertExpectations(t)
}

// A syntactically invalid id behaves like an id with no matching record.
func TestPortfolioHandler_Get_InvalidID(t *testing.T) {
	h := handler.NewPortfolioHandler(new(MockPortfolioService))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/portfolio/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	assert.ErrorIs(t, err, apperrors.ErrPortfolioNotFound)
}

func TestPortfolioHandler_Get_Found(t *testing.T) {
	id := uuid.New()
	mockSvc := new(MockPortfolioService)
	mockSvc.On("Get", mock.Anything, id).Return(&model.PortfolioItem{ID: id, Title: "Demo"}, nil)

	h := handler.NewPortfolioHandler(mockSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/portfolio/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
