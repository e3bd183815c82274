package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sync-backend/internal/middleware"
	"sync-backend/internal/models"
	"sync-backend/internal/services"
	"sync-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Login authenticates a mobile user and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Detail(w, http.StatusBadRequest, "userid & password required")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Detail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// VerifyToken echoes the authenticated identity back to the client. The auth
// middleware has already validated the token by the time this runs.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Detail(w, http.StatusUnauthorized, "Token missing")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"status": "success",
		"userid": userID,
	})
}
