package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

type mockFeedbackService struct {
	submitFunc func(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error)
	listFunc   func(ctx context.Context) ([]*model.Feedback, error)
}

func (m *mockFeedbackService) Submit(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.Feedback{ID: 1, Name: in.Name, Email: in.Email, Rating: in.Rating, Comment: in.Comment}, nil
}

func (m *mockFeedbackService) List(ctx context.Context) ([]*model.Feedback, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func TestFeedbackHandler_Create_Success(t *testing.T) {
	h := NewFeedbackHandler(&mockFeedbackService{})

	body := `{"name":"Ann","email":"a@x.com","rating":5,"comment":"Great!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var f model.Feedback
	if err := json.NewDecoder(rec.Body).Decode(&f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.ID != 1 || f.Rating != 5 || f.Name != "Ann" {
		t.Errorf("unexpected feedback: %+v", f)
	}
}

func TestFeedbackHandler_Create_BadRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  string
		wantMsg string
	}{
		{"word", `"five"`, "rating must be an integer"},
		{"fraction", `4.5`, "rating must be an integer"},
		{"too high", `6`, "rating must be between 1 and 5"},
		{"too low", `0`, "rating must be between 1 and 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockFeedbackService{
				submitFunc: func(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error) {
					called = true
					return nil, nil
				},
			}
			h := NewFeedbackHandler(mock)

			body := `{"name":"Ann","email":"a@x.com","comment":"ok","rating":` + tt.rating + `}`
			req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if called {
				t.Error("service must not be called for invalid input")
			}
			resp := decodeError(t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Field != "rating" || resp.Errors[0].Message != tt.wantMsg {
				t.Errorf("expected rating error %q, got %+v", tt.wantMsg, resp.Errors)
			}
		})
	}
}

func TestFeedbackHandler_Create_BodyTooLarge(t *testing.T) {
	h := NewFeedbackHandler(&mockFeedbackService{})

	body := `{"name":"Ann","email":"a@x.com","rating":5,"comment":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "body_too_large" {
		t.Errorf("expected body_too_large, got %q", resp.Error)
	}
}

func TestFeedbackHandler_Create_ServiceError(t *testing.T) {
	mock := &mockFeedbackService{
		submitFunc: func(ctx context.Context, in *model.NewFeedback) (*model.Feedback, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewFeedbackHandler(mock)

	body := `{"name":"Ann","email":"a@x.com","rating":5,"comment":"Great!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestFeedbackHandler_List_ServiceError(t *testing.T) {
	mock := &mockFeedbackService{
		listFunc: func(ctx context.Context) ([]*model.Feedback, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewFeedbackHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "list_failed" {
		t.Errorf("expected list_failed, got %q", resp.Error)
	}
}
