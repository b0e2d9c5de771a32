package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgFeedbackRepository is the PostgreSQL implementation of FeedbackRepository.
type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPgFeedbackRepository creates a PgFeedbackRepository.
func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

var _ FeedbackRepository = (*PgFeedbackRepository)(nil)

const feedbackSelectCols = `id, name, email, rating, comment, created_at`

func scanFeedback(scan func(...any) error) (*model.Feedback, error) {
	var f model.Feedback
	if err := scan(&f.ID, &f.Name, &f.Email, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.CreatedAt = f.CreatedAt.UTC()
	return &f, nil
}

// CreateFeedback inserts a feedback row.
func (r *PgFeedbackRepository) CreateFeedback(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO feedback (name, email, rating, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+feedbackSelectCols,
		in.Name, in.Email, in.Rating, in.Comment,
	)
	f, err := scanFeedback(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return f, nil
}

// ListFeedback returns every entry, newest first.
func (r *PgFeedbackRepository) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+feedbackSelectCols+` FROM feedback ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	entries := []*model.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}
