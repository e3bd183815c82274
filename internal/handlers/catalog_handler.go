package handlers

import (
	"net/http"

	"sync-backend/internal/models"
	"sync-backend/internal/services"
	"sync-backend/pkg/utils"
)

type CatalogHandler struct {
	Service *services.CatalogService
}

func NewCatalogHandler(s *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

type dataDownloadResponse struct {
	Status     string            `json:"status"`
	MasterData []models.Supplier `json:"master_data"`
	ProductData []models.Product `json:"product_data"`
}

// DataDownload streams the supplier and product reference data to the
// client ahead of offline order taking.
func (h *CatalogHandler) DataDownload(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Service.Download(r.Context())
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, dataDownloadResponse{
		Status:      "success",
		MasterData:  payload.Suppliers,
		ProductData: payload.Products,
	})
}
