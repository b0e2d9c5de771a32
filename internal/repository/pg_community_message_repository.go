package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgCommunityMessageRepository is the PostgreSQL implementation of
// CommunityMessageRepository.
type PgCommunityMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgCommunityMessageRepository creates a PgCommunityMessageRepository.
func NewPgCommunityMessageRepository(pool *pgxpool.Pool) *PgCommunityMessageRepository {
	return &PgCommunityMessageRepository{pool: pool}
}

var _ CommunityMessageRepository = (*PgCommunityMessageRepository)(nil)

const communitySelectCols = `id, name, message, avatar, created_at`

func scanCommunityMessage(scan func(...any) error) (*model.CommunityMessage, error) {
	var m model.CommunityMessage
	if err := scan(&m.ID, &m.Name, &m.Message, &m.Avatar, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}

// CreateCommunityMessage inserts a community_messages row. An empty avatar
// is stored as NULL.
func (r *PgCommunityMessageRepository) CreateCommunityMessage(ctx context.Context, in *model.NewCommunityMessage) (*model.CommunityMessage, error) {
	var avatar *string
	if in.Avatar != nil && *in.Avatar != "" {
		avatar = in.Avatar
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO community_messages (name, message, avatar)
		 VALUES ($1, $2, $3)
		 RETURNING `+communitySelectCols,
		in.Name, in.Message, avatar,
	)
	m, err := scanCommunityMessage(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("insert community message: %w", err)
	}
	return m, nil
}

// ListCommunityMessages returns every post, newest first.
func (r *PgCommunityMessageRepository) ListCommunityMessages(ctx context.Context) ([]*model.CommunityMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+communitySelectCols+` FROM community_messages ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list community messages: %w", err)
	}
	defer rows.Close()

	messages := []*model.CommunityMessage{}
	for rows.Next() {
		m, err := scanCommunityMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// SeedIfEmpty inserts the sample community posts when the table has no
// rows. It reports whether anything was inserted. The table is locked for
// the duration so concurrent starts seed at most once.
func (r *PgCommunityMessageRepository) SeedIfEmpty(ctx context.Context, now time.Time, rng *rand.Rand) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `LOCK TABLE community_messages IN EXCLUSIVE MODE`); err != nil {
		return false, fmt.Errorf("lock community_messages: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM community_messages)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check community_messages: %w", err)
	}
	if exists {
		return false, nil
	}

	for _, m := range SeedCommunityMessages(now, rng) {
		if _, err := tx.Exec(ctx,
			`INSERT INTO community_messages (name, message, avatar, created_at) VALUES ($1, $2, $3, $4)`,
			m.Name, m.Message, m.Avatar, m.CreatedAt,
		); err != nil {
			return false, fmt.Errorf("insert seed message: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
