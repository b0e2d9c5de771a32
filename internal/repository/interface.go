package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	CreateContact(ctx context.Context, in *model.NewContact) (*model.Contact, error)
	// ListContacts returns every submission, newest first.
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	// GetContact returns ErrNotFound when no submission has the given id.
	GetContact(ctx context.Context, id int64) (*model.Contact, error)
}

// CommunityMessageRepository persists community board posts.
type CommunityMessageRepository interface {
	CreateCommunityMessage(ctx context.Context, in *model.NewCommunityMessage) (*model.CommunityMessage, error)
	// ListCommunityMessages returns every post, newest first.
	ListCommunityMessages(ctx context.Context) ([]*model.CommunityMessage, error)
}

// FeedbackRepository persists feedback entries.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error)
	// ListFeedback returns every entry, newest first.
	ListFeedback(ctx context.Context) ([]*model.Feedback, error)
}

// Store is the full record store: all three collections plus a liveness check.
type Store interface {
	DB
	ContactRepository
	CommunityMessageRepository
	FeedbackRepository
}
