package site

import (
	"net/http"

	"sobasite/internal/adapters/http/response"
	"sobasite/internal/core/domain/site"
)

type Handler struct {
	content *site.Content
}

func NewHandler(content *site.Content) *Handler {
	return &Handler{content: content}
}

// GetContent returns the navbar links, social links and privacy-policy URL.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) error {
	response.RespondJSON(w, http.StatusOK, h.content)
	return nil
}
