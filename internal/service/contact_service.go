package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

// ContactInput carries the client-supplied fields of an inquiry.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// RequestMeta holds request attributes captured server-side, never taken from
// the submitted payload.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ContactService handles contact message operations.
type ContactService interface {
	Create(ctx context.Context, input ContactInput, meta RequestMeta) (*model.ContactMessage, error)
	List(ctx context.Context, status model.ContactStatus) ([]model.ContactMessage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Create stores an inquiry with its request metadata, defaulting the status.
func (s *contactService) Create(ctx context.Context, input ContactInput, meta RequestMeta) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Status:    model.ContactStatusNew,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

// List returns messages newest first, optionally filtered by status.
func (s *contactService) List(ctx context.Context, status model.ContactStatus) ([]model.ContactMessage, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "Status must be one of new, read, responded",
		})
	}

	msgs, err := s.repo.Find(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

// Get returns a single message or a not-found error.
func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}
	return msg, nil
}

// UpdateStatus moves a message through its workflow. Status is the only
// mutable field.
func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.ContactMessage, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError(map[string]string{
			"status": "Status must be one of new, read, responded",
		})
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}

	msg.Status = status
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return msg, nil
}
