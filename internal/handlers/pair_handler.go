package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"sync-backend/internal/config"
	"sync-backend/internal/pairing"
	"sync-backend/pkg/utils"
)

var pairLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "pairing").Logger()

type PairHandler struct {
	cfg     *config.Config
	manager *pairing.Manager
}

func NewPairHandler(cfg *config.Config, manager *pairing.Manager) *PairHandler {
	return &PairHandler{cfg: cfg, manager: manager}
}

type pairCheckRequest struct {
	Password string `json:"password"`
}

// PairCheck verifies the shared pairing password, then makes sure the
// desktop companion service is running, launching it when it is not.
func (h *PairHandler) PairCheck(w http.ResponseWriter, r *http.Request) {
	var req pairCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Detail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pairLogger.Info().Str("remote", r.RemoteAddr).Msg("pair check request")

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Pairing.Password)) != 1 {
		pairLogger.Warn().Str("remote", r.RemoteAddr).Msg("invalid pairing password")
		utils.Detail(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	if _, err := h.manager.BinaryPath(); err != nil {
		if errors.Is(err, pairing.ErrNotInstalled) {
			pairLogger.Error().Str("dir", h.manager.ServiceDir).Msg("companion binary not found")
			utils.Detail(w, http.StatusNotFound, "Sync service binary not found")
			return
		}
		utils.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}

	running, pid, err := h.manager.Running()
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "Failed to inspect processes: "+err.Error())
		return
	}
	if running {
		pairLogger.Info().Int32("pid", pid).Msg("sync service already running")
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"status":          "success",
			"message":         "Sync service already running",
			"pair_successful": true,
		})
		return
	}

	if err := h.manager.Launch(); err != nil {
		pairLogger.Error().Err(err).Msg("failed to start sync service")
		utils.Detail(w, http.StatusInternalServerError, "Failed to start sync service: "+err.Error())
		return
	}

	pairLogger.Info().Msg("sync service started")
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"message":         "Sync service launched successfully",
		"pair_successful": true,
	})
}
