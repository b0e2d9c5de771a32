package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id, first_name, last_name, email, subject, message, created_at`

func scanContact(scan func(...any) error) (*model.Contact, error) {
	var c model.Contact
	if err := scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

// CreateContact inserts a contacts row. id and created_at come from the
// database RETURNING clause.
func (r *PgContactRepository) CreateContact(ctx context.Context, in *model.NewContact) (*model.Contact, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (first_name, last_name, email, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+contactSelectCols,
		in.FirstName, in.LastName, in.Email, in.Subject, in.Message,
	)
	c, err := scanContact(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return c, nil
}

// ListContacts returns every contact submission, newest first.
func (r *PgContactRepository) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contacts ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*model.Contact{}
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// GetContact returns the submission with the given id, or ErrNotFound.
func (r *PgContactRepository) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+contactSelectCols+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}
