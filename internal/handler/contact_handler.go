package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// ContactHandler handles contact message endpoints.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ContactRequest represents a public inquiry submission. IP address and user
// agent are captured server-side, never from the payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ContactStatusRequest represents a status workflow update.
type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

// Create godoc
// @Summary Submit a contact inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.svc.Create(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}, service.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	resp := DataResponse(msg)
	resp.Message = "Message sent successfully"
	return c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(new, read, responded)
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.svc.List(c.Request().Context(), model.ContactStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ListResponse(msgs, len(msgs)))
}

// Get godoc
// @Summary Get a single contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrContactNotFound
	}

	msg, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(msg))
}

// UpdateStatus godoc
// @Summary Update a contact message's workflow status
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body ContactStatusRequest true "New status"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /contact/{id} [put]
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrContactNotFound
	}

	var req ContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.svc.UpdateStatus(c.Request().Context(), id, model.ContactStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(msg))
}
