package api

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/findly-app/findly/internal/auth"
	"github.com/findly-app/findly/internal/store"
)

// AuthHandler handles owner login and password changes.
type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
}

type loginRequest struct {
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hash, ok := h.Store.OwnerPasswordHash()
	if !ok {
		jsonError(w, http.StatusUnauthorized, "no owner password set")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		jsonError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}

// ChangePassword handles PUT /api/auth/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.NewPassword) < 8 {
		jsonError(w, http.StatusBadRequest, "new password must be at least 8 characters")
		return
	}

	hash, ok := h.Store.OwnerPasswordHash()
	if !ok {
		jsonError(w, http.StatusUnauthorized, "no owner password set")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.CurrentPassword)); err != nil {
		jsonError(w, http.StatusUnauthorized, "invalid current password")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	h.Store.SetOwnerPassword(string(newHash))

	jsonResponse(w, http.StatusOK, map[string]string{"message": "password changed"})
}
