package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// PgStore bundles the PostgreSQL repositories behind the Store interface.
type PgStore struct {
	*PgContactRepository
	*PgCommunityMessageRepository
	*PgFeedbackRepository
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore backed by the given pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{
		PgContactRepository:          NewPgContactRepository(pool),
		PgCommunityMessageRepository: NewPgCommunityMessageRepository(pool),
		PgFeedbackRepository:         NewPgFeedbackRepository(pool),
		pool:                         pool,
	}
}

var _ Store = (*PgStore)(nil)

// Ping checks the database connection.
func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
