package handlers

import (
	"net/http"
	"time"

	"github.com/dom/wardle/internal/api/middleware"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type AdminSessionResponse struct {
	Subject   string    `json:"subject"`
	TokenID   string    `json:"tokenId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Me describes the admin token the request was made with.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetAdminClaims(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resp := AdminSessionResponse{
		Subject: claims.Subject,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	writeJSON(w, http.StatusOK, resp)
}
