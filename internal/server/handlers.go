package server

import (
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/ledmatrix/sportsticker/internal/poller"
	"github.com/ledmatrix/sportsticker/internal/ticker"
)

// tickerAPI is the slice of the Ticker the handlers need.
type tickerAPI interface {
	Frame() *image.RGBA
	StripImage() *image.RGBA
	Describe() ticker.Info
}

// Handler wires HTTP routes to the ticker and poller.
type Handler struct {
	ticker   tickerAPI
	logger   *slog.Logger
	statusFn func() poller.Status
	provider string
	width    int
	height   int
}

// NewHandler constructs a Handler. statusFn may be nil; /ready then always
// reports ready.
func NewHandler(tk tickerAPI, logger *slog.Logger, statusFn func() poller.Status, provider string, width, height int) *Handler {
	return &Handler{
		ticker:   tk,
		logger:   logger,
		statusFn: statusFn,
		provider: provider,
		width:    width,
		height:   height,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the poller's recent health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		body := map[string]any{
			"status":               "not ready",
			"consecutive_failures": status.ConsecutiveFailures,
		}
		if status.LastError != "" {
			body["last_error"] = status.LastError
		}
		writeJSON(w, http.StatusServiceUnavailable, body, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

type infoResponse struct {
	Provider string      `json:"provider"`
	Display  displayInfo `json:"display"`
	Ticker   ticker.Info `json:"ticker"`
	Poller   *pollerInfo `json:"poller,omitempty"`
}

type displayInfo struct {
	Width  int `json:"width_px"`
	Height int `json:"height_px"`
}

type pollerInfo struct {
	Ready               bool      `json:"ready"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
	LastAttempt         time.Time `json:"last_attempt,omitempty"`
	LastSuccess         time.Time `json:"last_success,omitempty"`
}

// Info describes the ticker's presentation state for diagnostics.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	resp := infoResponse{
		Provider: h.provider,
		Display:  displayInfo{Width: h.width, Height: h.height},
		Ticker:   h.ticker.Describe(),
	}
	if h.statusFn != nil {
		status := h.statusFn()
		resp.Poller = &pollerInfo{
			Ready:               status.IsReady(),
			ConsecutiveFailures: status.ConsecutiveFailures,
			LastError:           status.LastError,
			LastAttempt:         status.LastAttempt,
			LastSuccess:         status.LastSuccess,
		}
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Frame serves the current viewport as a PNG.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	frame := h.ticker.Frame()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, frame); err != nil && h.logger != nil {
		h.logger.Error("failed to encode frame", "err", err)
	}
}

// Strip serves the full composed strip as a PNG, or 404 before first build.
func (h *Handler) Strip(w http.ResponseWriter, r *http.Request) {
	strip := h.ticker.StripImage()
	if strip == nil {
		writeError(w, r, http.StatusNotFound, "no strip built yet", h.logger)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, strip); err != nil && h.logger != nil {
		h.logger.Error("failed to encode strip", "err", err)
	}
}
