package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository is an in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc func(ctx context.Context, in *model.NewContact) (*model.Contact, error)
	listFunc   func(ctx context.Context) ([]*model.Contact, error)
	getFunc    func(ctx context.Context, id int64) (*model.Contact, error)
}

func (m *mockContactRepository) CreateContact(ctx context.Context, in *model.NewContact) (*model.Contact, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Contact{ID: 1, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}, nil
}

func (m *mockContactRepository) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*model.Contact{}, nil
}

func (m *mockContactRepository) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_ForwardsInput(t *testing.T) {
	var got *model.NewContact
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, in *model.NewContact) (*model.Contact, error) {
			got = in
			return &model.Contact{ID: 7, Email: in.Email, CreatedAt: time.Now()}, nil
		},
	}
	svc := NewContactService(mock)

	in := &model.NewContact{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	c, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Error("expected input to be passed to the repository unchanged")
	}
	if c.ID != 7 {
		t.Errorf("expected id 7, got %d", c.ID)
	}
}

func TestContactService_Submit_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, in *model.NewContact) (*model.Contact, error) {
			return nil, errors.New("db write failed")
		},
	}
	svc := NewContactService(mock)

	c, err := svc.Submit(context.Background(), &model.NewContact{Email: "e@e.com"})
	if err == nil {
		t.Error("expected error from repository, got nil")
	}
	if c != nil {
		t.Errorf("expected nil contact on error, got %+v", c)
	}
}

// ---------------------------------------------------------------------------
// List / Get tests
// ---------------------------------------------------------------------------

func TestContactService_List_ReturnsContacts(t *testing.T) {
	want := []*model.Contact{{ID: 2, Email: "b@b.com"}, {ID: 1, Email: "a@a.com"}}
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			return want, nil
		},
	}
	svc := NewContactService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("expected repository order to be kept, got %+v", got)
	}
}

func TestContactService_List_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}

func TestContactService_Get_NotFound(t *testing.T) {
	svc := NewContactService(&mockContactRepository{})

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContactService_Get_ForwardsID(t *testing.T) {
	var gotID int64
	mock := &mockContactRepository{
		getFunc: func(ctx context.Context, id int64) (*model.Contact, error) {
			gotID = id
			return &model.Contact{ID: id}, nil
		},
	}
	svc := NewContactService(mock)

	c, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 3 || c.ID != 3 {
		t.Errorf("expected id 3 to be forwarded, got %d", gotID)
	}
}
