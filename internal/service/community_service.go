package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// CommunityService defines the business logic for the community message board.
type CommunityService interface {
	// Post stores a validated post. Name and message are kept exactly as
	// sent; escaping is the renderer's job.
	Post(ctx context.Context, in *model.NewCommunityMessage) (*model.CommunityMessage, error)

	// List returns every post, newest first.
	List(ctx context.Context) ([]*model.CommunityMessage, error)
}
