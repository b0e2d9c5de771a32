package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a validated submission and returns it with its id and
	// creation time.
	Submit(ctx context.Context, in *model.NewContact) (*model.Contact, error)

	// List returns every submission, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// Get returns one submission or repository.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Contact, error)
}
