package service

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

type communityServiceImpl struct {
	repo repository.CommunityMessageRepository
}

// NewCommunityService creates a CommunityService backed by the given repository.
func NewCommunityService(repo repository.CommunityMessageRepository) CommunityService {
	return &communityServiceImpl{repo: repo}
}

func (s *communityServiceImpl) Post(ctx context.Context, in *model.NewCommunityMessage) (*model.CommunityMessage, error) {
	m, err := s.repo.CreateCommunityMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "community message posted", "collection", "community_messages", "id", m.ID)
	return m, nil
}

func (s *communityServiceImpl) List(ctx context.Context) ([]*model.CommunityMessage, error) {
	return s.repo.ListCommunityMessages(ctx)
}
