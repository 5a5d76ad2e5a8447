package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pattarin/banchi/internal/adapter/chat"
	"github.com/pattarin/banchi/internal/adapter/http/dto"
)

// WebhookHandler receives chat messages from the transport bridge and
// returns the reply text to deliver.
type WebhookHandler struct {
	dispatcher *chat.Dispatcher
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(dispatcher *chat.Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// Handle processes one inbound message.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.GroupID == "" || req.SenderID == "" {
		writeError(w, http.StatusBadRequest, "missing required fields", "group_id and sender_id are required")
		return
	}

	reply, err := h.dispatcher.Handle(r.Context(), req.ToMessage())
	if err != nil {
		writeError(w, mapDomainError(err), "message handling failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WebhookResponse{Reply: reply})
}
