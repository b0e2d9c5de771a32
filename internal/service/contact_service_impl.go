package service

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in *model.NewContact) (*model.Contact, error) {
	c, err := s.repo.CreateContact(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "contact submitted", "collection", "contacts", "id", c.ID)
	return c, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.ListContacts(ctx)
}

func (s *contactServiceImpl) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return s.repo.GetContact(ctx, id)
}
