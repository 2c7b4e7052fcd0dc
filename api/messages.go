package api

import (
	"net/http"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

type MessagesHandler struct {
	repo repository.MessageRepo
}

func NewMessagesHandler(mr repository.MessageRepo) *MessagesHandler {
	return &MessagesHandler{repo: mr}
}

var messageSchema = compileSchema(`{
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"message": {"type": ["string", "null"]}
	}
}`)

// The email is only checked for presence.
type postMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *MessagesHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.repo.ListMessages(r.Context())
	if err != nil {
		internalError(w, r, "list messages", err)
		return
	}

	writeJSON(w, msgs, http.StatusOK)
}

func (h *MessagesHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if !decodeJSON(w, r, messageSchema, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Name, email, message required")
		return
	}

	m := &models.Message{Name: req.Name, Email: req.Email, Message: req.Message}
	id, err := h.repo.CreateMessage(r.Context(), m)
	if err != nil {
		internalError(w, r, "create message", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Message sent", ID: &id}, http.StatusCreated)
}

func (h *MessagesHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteMessage(r.Context(), id); err != nil {
		internalError(w, r, "delete message", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Message deleted"}, http.StatusOK)
}
