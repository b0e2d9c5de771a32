package service

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

type feedbackServiceImpl struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService backed by the given repository.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{repo: repo}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error) {
	f, err := s.repo.CreateFeedback(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "feedback submitted", "collection", "feedback", "id", f.ID, "rating", f.Rating)
	return f, nil
}

func (s *feedbackServiceImpl) List(ctx context.Context) ([]*model.Feedback, error) {
	return s.repo.ListFeedback(ctx)
}
