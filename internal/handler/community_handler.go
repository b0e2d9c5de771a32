package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// CommunityHandler handles the community message board.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// Create handles POST /api/community/messages.
// name and message are required; avatar is an optional image URL.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}
	in, err := validation.CommunityMessage(p)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	m, err := h.communityService.Post(r.Context(), in)
	if err != nil {
		slog.Error("post community message failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// List handles GET /api/community/messages.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.communityService.List(r.Context())
	if err != nil {
		slog.Error("list community messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if messages == nil {
		messages = []*model.CommunityMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
