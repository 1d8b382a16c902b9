// Package httpapi is the JSON HTTP boundary. It translates requests into
// orchestrator inputs, renders view models as JSON, and streams sprite
// artwork from the configured blob source.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Leo-Expose/PokeBase/internal/blob"
	"github.com/Leo-Expose/PokeBase/internal/errors"
	"github.com/Leo-Expose/PokeBase/internal/orchestrators/pokedex"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Service pokedex.Service
	Sprites blob.Source

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger

	// Metrics defaults to a fresh registry when nil.
	Metrics *Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Sprites == nil {
		vb.RequiredField("Sprites")
	}

	return vb.Build()
}

// Handler serves the public HTTP API.
type Handler struct {
	service pokedex.Service
	sprites blob.Source
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandler creates a new HTTP handler with the given configuration
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &Handler{
		service: cfg.Service,
		sprites: cfg.Sprites,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Routes returns the fully wired handler: every route behind the
// recovery, logging, and metrics middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pokemon/random", h.handleRandom)
	mux.HandleFunc("GET /api/pokemon/{identifier}", h.handleGetEntry)
	mux.HandleFunc("GET /api/pokemon-suggest", h.handleSuggest)
	mux.HandleFunc("GET /sprites/{file}", h.handleSprite)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	return h.recover(h.logRequests(h.measure(mux)))
}

func (h *Handler) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	out, err := h.service.GetEntry(r.Context(), &pokedex.GetEntryInput{Identifier: identifier})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if out.Entry == nil {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	writeJSON(w, http.StatusOK, out.Entry)
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Suggest(r.Context(), &pokedex.SuggestInput{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	results := out.Results
	if results == nil {
		results = []pokedex.Suggestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.RandomIdentifier(r.Context(), &pokedex.RandomIdentifierInput{})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/api/pokemon/"+out.Identifier, http.StatusFound)
}

func (h *Handler) handleSprite(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	id, ok := strings.CutSuffix(file, ".png")
	if !ok || id == "" {
		writeError(w, http.StatusNotFound, "sprite not found")
		return
	}
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		writeError(w, http.StatusNotFound, "sprite not found")
		return
	}

	obj, err := h.sprites.Open(r.Context(), file)
	if errors.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "sprite not found")
		return
	}
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	defer func() { _ = obj.Body.Close() }()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, obj.Body)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps an orchestrator error onto an HTTP status. Internal
// detail stays in the log; the response carries only the public message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.GetCode(err).HTTPStatus()
	if r.Context().Err() == context.Canceled {
		// client went away, nothing useful to log or send
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	message := "internal error"
	if status < http.StatusInternalServerError {
		message = errors.GetMessage(err)
	}
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
