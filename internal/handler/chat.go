// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eduree/metaon/internal/assistant"
)

// maxChatMessageLen bounds a single chat message.
const maxChatMessageLen = 4000

// ChatHandler serves the chat widget's JSON endpoint.
type ChatHandler struct {
	assistant *assistant.Assistant
}

// NewChatHandler creates a new ChatHandler. The assistant may be nil when
// no provider is configured; the endpoint then returns the fixed error
// reply.
func NewChatHandler(a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{assistant: a}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a single visitor message. Provider failures map to the
// widget's fixed error string rather than an HTTP error so the widget
// can always display something.
// POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatMessageLen)).Decode(&req); err != nil {
		writeChatJSON(w, http.StatusBadRequest, chatResponse{Reply: assistant.FallbackReply})
		return
	}
	if req.Message == "" {
		writeChatJSON(w, http.StatusBadRequest, chatResponse{Reply: assistant.FallbackReply})
		return
	}

	if h.assistant == nil {
		writeChatJSON(w, http.StatusOK, chatResponse{Reply: assistant.ErrorReply})
		return
	}

	reply, err := h.assistant.Reply(r.Context(), req.Message)
	if err != nil {
		slog.Warn("chat reply failed", "error", err)
		writeChatJSON(w, http.StatusOK, chatResponse{Reply: assistant.ErrorReply})
		return
	}

	writeChatJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func writeChatJSON(w http.ResponseWriter, status int, resp chatResponse) {
	w.Header().Set(HeaderContentType, "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
