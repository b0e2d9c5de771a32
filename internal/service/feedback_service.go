package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// FeedbackService defines the business logic for feedback entries.
type FeedbackService interface {
	Submit(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error)
	List(ctx context.Context) ([]*model.Feedback, error)
}
