package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// FeedbackHandler handles the star-rating feedback form.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Create handles POST /api/feedback.
// rating must be an integer from 1 to 5.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}
	in, err := validation.Feedback(p)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	f, err := h.feedbackService.Submit(r.Context(), in)
	if err != nil {
		slog.Error("submit feedback failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// List handles GET /api/feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.List(r.Context())
	if err != nil {
		slog.Error("list feedback failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if entries == nil {
		entries = []*model.Feedback{}
	}
	writeJSON(w, http.StatusOK, entries)
}
