package handlers

import (
	"fmt"
	"net/http"
	"time"

	"sync-backend/internal/config"
	"sync-backend/internal/timeutil"
	"sync-backend/pkg/utils"
)

type StatusHandler struct {
	cfg *config.Config
}

func NewStatusHandler(cfg *config.Config) *StatusHandler {
	return &StatusHandler{cfg: cfg}
}

// Status reports the addresses a mobile client can try when discovering the
// server on the local network.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ips := h.cfg.Server.AdvertisedIPs
	urls := make([]string, 0, len(ips))
	for _, ip := range ips {
		urls = append(urls, fmt.Sprintf("http://%s:%d", ip, h.cfg.Server.Port))
	}

	hint := h.cfg.Pairing.Password
	if len(hint) > 3 {
		hint = hint[:3]
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":             "online",
		"message":            "SyncAnywhere server is running",
		"primary_ip":         h.cfg.Server.AdvertisedIP,
		"all_available_ips":  ips,
		"connection_urls":    urls,
		"pair_password_hint": "Password starts with: " + hint + "...",
		"server_time":        timeutil.Now().Format(time.RFC3339),
		"instructions": map[string]interface{}{
			"mobile_setup": "Try connecting to any of the URLs listed in 'connection_urls'",
			"troubleshooting": []string{
				"Ensure both devices are on the same WiFi network",
				"Try each IP address if the first one doesn't work",
				"Check firewall settings on the server computer",
				fmt.Sprintf("Verify port %d is not blocked", h.cfg.Server.Port),
			},
		},
	})
}
