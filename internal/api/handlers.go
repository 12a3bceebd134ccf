package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spool-dev/spool/internal/composer"
	"github.com/spool-dev/spool/internal/config"
	"github.com/spool-dev/spool/internal/models"
)

// Handler handles HTTP requests for the Spool API
type Handler struct {
	composer  *composer.Composer
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new Handler instance
func NewHandler(comp *composer.Composer, cfg *config.Config) *Handler {
	return &Handler{
		composer:  comp,
		config:    cfg,
		startTime: time.Now(),
	}
}

// =============================================================================
// Handlers
// =============================================================================

// Health handles GET /health requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	writeJSON(w, http.StatusOK, response)
}

// Limits handles GET /limits requests
func (h *Handler) Limits(w http.ResponseWriter, r *http.Request) {
	limits := h.composer.Limits()
	response := LimitsResponse{
		HardLimit:   limits.HardLimit,
		OptimalMin:  limits.OptimalMin,
		OptimalMax:  limits.OptimalMax,
		DefaultTone: h.config.Defaults.Tone,
	}
	writeJSON(w, http.StatusOK, response)
}

// Format handles POST /format requests
func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Server.MaxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req FormatRequest
	if err := decoder.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WritePayloadTooLarge(w, ErrBodyTooLarge.WithDetails(
				fmt.Sprintf("the limit is %d bytes", maxBytesErr.Limit)))
			return
		}
		WriteBadRequest(w, ErrInvalidJSON.WithDetails(err.Error()))
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = h.config.Defaults.Tone
	}

	thread, err := h.composer.Compose(composer.Request{
		Content:          req.Content,
		Images:           req.Images,
		Tone:             models.ParseTone(tone),
		IncludeNumbering: req.IncludeNumbering,
	})
	if err != nil {
		if errors.Is(err, composer.ErrEmptyRequest) {
			WriteBadRequest(w, ErrEmptyRequest)
			return
		}
		WriteInternalError(w, ErrFormatFailed.WithDetails(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, NewFormatResponse(thread))
}

// =============================================================================
// Helpers
// =============================================================================

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
