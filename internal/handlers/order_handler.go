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

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

// UploadOrders accepts a batch of orders from the mobile client and hands it
// to the transaction engine. The whole batch commits or none of it does; the
// caller resubmits everything on failure.
func (h *OrderHandler) UploadOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Detail(w, http.StatusUnauthorized, "Token missing")
		return
	}

	var req models.UploadOrdersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Detail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.Service.Upload(r.Context(), &req, userID); err != nil {
		if errors.Is(err, services.ErrNoOrders) {
			utils.Detail(w, http.StatusBadRequest, "No orders supplied")
			return
		}
		utils.Detail(w, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Orders uploaded successfully",
	})
}
