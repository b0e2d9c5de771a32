package repository

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// collection is an append-only set of records with its own id counter.
// Id assignment and insertion happen under the same lock.
type collection[T any] struct {
	mu        sync.RWMutex
	nextID    int64
	records   []*T
	byID      map[int64]*T
	createdAt func(*T) time.Time
}

func newCollection[T any](createdAt func(*T) time.Time) *collection[T] {
	return &collection[T]{
		nextID:    1,
		byID:      make(map[int64]*T),
		createdAt: createdAt,
	}
}

// insert stores the record produced by build and returns a copy of it.
// now is read while the lock is held so that id order never contradicts
// timestamp order for records stamped by the same clock.
func (c *collection[T]) insert(now func() time.Time, build func(id int64, at time.Time) *T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	rec := build(id, now().UTC())
	c.records = append(c.records, rec)
	c.byID[id] = rec

	out := *rec
	return &out
}

// list returns copies of every record, newest first. Records with equal
// timestamps keep insertion order.
func (c *collection[T]) list() []*T {
	c.mu.RLock()
	out := make([]*T, 0, len(c.records))
	for _, rec := range c.records {
		cp := *rec
		out = append(out, &cp)
	}
	c.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *T) int {
		return c.createdAt(b).Compare(c.createdAt(a))
	})
	return out
}

func (c *collection[T]) get(id int64) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	out := *rec
	return &out, true
}

// MemStore is the in-memory record store. It owns the contact, community
// message and feedback collections and is safe for concurrent use.
type MemStore struct {
	now      func() time.Time
	contacts *collection[model.Contact]
	messages *collection[model.CommunityMessage]
	feedback *collection[model.Feedback]
}

var _ Store = (*MemStore)(nil)

type memConfig struct {
	now  func() time.Time
	rng  *rand.Rand
	seed bool
}

// MemOption configures a MemStore.
type MemOption func(*memConfig)

// WithClock sets the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) MemOption {
	return func(c *memConfig) { c.now = now }
}

// WithRand sets the random source used for seed timestamps.
func WithRand(rng *rand.Rand) MemOption {
	return func(c *memConfig) { c.rng = rng }
}

// WithoutSeed leaves the community collection empty.
func WithoutSeed() MemOption {
	return func(c *memConfig) { c.seed = false }
}

// NewMemStore creates a MemStore. Unless WithoutSeed is given, the
// community collection starts with the sample messages (ids 1-4).
func NewMemStore(opts ...MemOption) *MemStore {
	cfg := memConfig{now: time.Now, seed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &MemStore{
		now:      cfg.now,
		contacts: newCollection(func(c *model.Contact) time.Time { return c.CreatedAt }),
		messages: newCollection(func(m *model.CommunityMessage) time.Time { return m.CreatedAt }),
		feedback: newCollection(func(f *model.Feedback) time.Time { return f.CreatedAt }),
	}
	if cfg.seed {
		s.seedCommunity(cfg.rng)
	}
	return s
}

func (s *MemStore) seedCommunity(rng *rand.Rand) {
	for _, seed := range SeedCommunityMessages(s.now(), rng) {
		stamp := seed.CreatedAt
		s.messages.insert(func() time.Time { return stamp }, func(id int64, at time.Time) *model.CommunityMessage {
			m := seed
			m.ID = id
			m.CreatedAt = at
			return &m
		})
	}
}

// Ping always succeeds.
func (s *MemStore) Ping(context.Context) error { return nil }

// CreateContact stores a new contact submission.
func (s *MemStore) CreateContact(_ context.Context, in *model.NewContact) (*model.Contact, error) {
	return s.contacts.insert(s.now, func(id int64, at time.Time) *model.Contact {
		return &model.Contact{
			ID:        id,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Subject:   in.Subject,
			Message:   in.Message,
			CreatedAt: at,
		}
	}), nil
}

// ListContacts returns every contact submission, newest first.
func (s *MemStore) ListContacts(context.Context) ([]*model.Contact, error) {
	return s.contacts.list(), nil
}

// GetContact looks up a contact submission by id.
func (s *MemStore) GetContact(_ context.Context, id int64) (*model.Contact, error) {
	c, ok := s.contacts.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// CreateCommunityMessage stores a new community post. An empty avatar is
// stored as nil.
func (s *MemStore) CreateCommunityMessage(_ context.Context, in *model.NewCommunityMessage) (*model.CommunityMessage, error) {
	avatar := in.Avatar
	if avatar != nil && *avatar == "" {
		avatar = nil
	}
	return s.messages.insert(s.now, func(id int64, at time.Time) *model.CommunityMessage {
		return &model.CommunityMessage{
			ID:        id,
			Name:      in.Name,
			Message:   in.Message,
			Avatar:    avatar,
			CreatedAt: at,
		}
	}), nil
}

// ListCommunityMessages returns every community post, newest first.
func (s *MemStore) ListCommunityMessages(context.Context) ([]*model.CommunityMessage, error) {
	return s.messages.list(), nil
}

// CreateFeedback stores a new feedback entry.
func (s *MemStore) CreateFeedback(_ context.Context, in *model.NewFeedback) (*model.Feedback, error) {
	return s.feedback.insert(s.now, func(id int64, at time.Time) *model.Feedback {
		return &model.Feedback{
			ID:        id,
			Name:      in.Name,
			Email:     in.Email,
			Rating:    in.Rating,
			Comment:   in.Comment,
			CreatedAt: at,
		}
	}), nil
}

// ListFeedback returns every feedback entry, newest first.
func (s *MemStore) ListFeedback(context.Context) ([]*model.Feedback, error) {
	return s.feedback.list(), nil
}
