package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookexplorer/internal/chat"
	"bookexplorer/internal/httpx"
	"bookexplorer/internal/session"
)

type ChatHandler struct {
	sessions *session.Manager
}

func NewChatHandler(sessions *session.Manager) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

type chatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatMessageResponse struct {
	SessionID string     `json:"session_id"`
	Reply     chat.Entry `json:"reply"`
}

// Message runs one chat turn: the user entry and the assistant reply
// are appended to the session log and the reply is returned.
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "empty_message", "message is required", nil)
		return
	}

	s, err := h.sessions.Get(ctx, req.SessionID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server_error", "server error", nil)
		return
	}

	reply := s.Send(req.Message)
	httpx.JSONSuccess(w, chatMessageResponse{SessionID: s.ID, Reply: reply}, nil)
}

// History returns the ordered conversation for an existing session.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sid := r.URL.Query().Get("session_id")
	if sid == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_session_id", "session_id is required", nil)
		return
	}

	s, ok := h.sessions.Lookup(sid)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "session_not_found", "unknown session", nil)
		return
	}

	entries := s.Entries()
	httpx.JSONSuccess(w, entries, map[string]interface{}{"count": len(entries)})
}
