package api

import (
	"log/slog"
	"net/http"
	"strings"

	"market-holidays/internal/export"
	"market-holidays/internal/logger"

	"github.com/pquerna/otp/totp"
)

// TOTPHeader carries the one-time code for admin endpoints.
const TOTPHeader = "X-TOTP-Code"

type exportResponse struct {
	Status  string          `json:"status"`
	Results []export.Result `json:"results"`
	Error   string          `json:"error,omitempty"`
}

// handleAdminExport re-runs every configured exporter. It is guarded by a
// TOTP code so the endpoint can be exposed without a shared static token.
func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if s.totpSecret == "" {
		writeError(w, http.StatusNotFound, "admin api disabled")
		return
	}
	code := strings.TrimSpace(r.Header.Get(TOTPHeader))
	if code == "" || !totp.Validate(code, s.totpSecret) {
		slog.Warn("[admin] rejected export request", logger.LogAttrs(r.Context())...)
		writeError(w, http.StatusUnauthorized, "invalid or missing one-time code")
		return
	}
	if !s.exports.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "no export targets configured")
		return
	}

	results, err := s.exports.Run(r.Context(), s.reg)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, exportResponse{Status: "error", Results: results, Error: err.Error()})
		return
	}
	slog.Info("[admin] export complete", append([]any{"targets", s.exports.Targets()}, logger.LogAttrs(r.Context())...)...)
	writeJSON(w, http.StatusOK, exportResponse{Status: "ok", Results: results})
}
