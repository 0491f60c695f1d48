package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
	"devfolio/internal/service"
)

// PortfolioHandler handles portfolio endpoints.
type PortfolioHandler struct {
	svc service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(svc service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// CreatePortfolioRequest represents a full portfolio document.
type CreatePortfolioRequest struct {
	Title        string   `json:"title" validate:"required,max=100"`
	Description  string   `json:"description" validate:"required,max=1000"`
	Image        string   `json:"image" validate:"required,url"`
	Video        string   `json:"video" validate:"omitempty,url"`
	Category     string   `json:"category" validate:"required,oneof=web mobile design other"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,required"`
	LiveURL      string   `json:"live_url" validate:"omitempty,url"`
	GithubURL    string   `json:"github_url" validate:"omitempty,url"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// UpdatePortfolioRequest represents a partial update; the resulting document
// is revalidated as a whole.
type UpdatePortfolioRequest struct {
	Title        *string  `json:"title" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	Image        *string  `json:"image" validate:"omitempty,url"`
	Video        *string  `json:"video" validate:"omitempty,url"`
	Category     *string  `json:"category" validate:"omitempty,oneof=web mobile design other"`
	Technologies []string `json:"technologies" validate:"omitempty,min=1,dive,required"`
	LiveURL      *string  `json:"live_url" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url" validate:"omitempty,url"`
	Featured     *bool    `json:"featured"`
	Order        *int     `json:"order"`
}

// List godoc
// @Summary List portfolio items
// @Tags portfolio
// @Produce json
// @Param category query string false "Filter by category" Enums(web, mobile, design, other)
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {object} Response
// @Router /portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	filter := repository.PortfolioFilter{
		Category: model.Category(c.QueryParam("category")),
	}
	switch c.QueryParam("featured") {
	case "true":
		featured := true
		filter.Featured = &featured
	case "false":
		featured := false
		filter.Featured = &featured
	}

	items, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ListResponse(items, len(items)))
}

// Get godoc
// @Summary Get a single portfolio item
// @Tags portfolio
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrPortfolioNotFound
	}

	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(item))
}

// Create godoc
// @Summary Create a portfolio item
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePortfolioRequest true "Portfolio item"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var req CreatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.svc.Create(c.Request().Context(), service.PortfolioInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Video:        req.Video,
		Category:     model.Category(req.Category),
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
		Order:        req.Order,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, DataResponse(item))
}

// Update godoc
// @Summary Update a portfolio item
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdatePortfolioRequest true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrPortfolioNotFound
	}

	var req UpdatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := service.PortfolioPatch{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Video:        req.Video,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
		Order:        req.Order,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		patch.Category = &category
	}

	item, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(item))
}

// Delete godoc
// @Summary Delete a portfolio item
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrPortfolioNotFound
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse("Portfolio item deleted successfully"))
}
