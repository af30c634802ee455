// Package httpapi serves the reference data over HTTP and lets an operator
// rebuild it.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
	"github.com/SogeMoge/xwsbot/internal/pkg/lookup"
	referencerepo "github.com/SogeMoge/xwsbot/internal/repositories/reference"
	"github.com/SogeMoge/xwsbot/internal/services/importer"
)

const (
	// ProbePilot is looked up after a rebuild to check the data made it in
	ProbePilot = "blackout"

	// ReinitMessage is the body message of a successful rebuild
	ReinitMessage = "Database reinitialized successfully."
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Repository referencerepo.Repository
	Importer   importer.Service
	DataRoot   string
	// Logger (optional)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Importer == nil {
		vb.RequiredField("Importer")
	}
	errors.ValidateRequired("DataRoot", c.DataRoot, vb)
	return vb.Build()
}

// Handler implements the HTTP endpoints
type Handler struct {
	repo     referencerepo.Repository
	importer importer.Service
	dataRoot string
	logger   *zap.Logger
}

// New creates a Handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		repo:     cfg.Repository,
		importer: cfg.Importer,
		dataRoot: cfg.DataRoot,
		logger:   cfg.Logger,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h, nil
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", Healthz)

	r.Get("/factions/{xws}", h.GetFaction)
	r.Get("/pilots/{xws}", h.GetPilot)
	r.Get("/pilots/{xws}/ship", h.GetPilotShip)
	r.Get("/upgrades/{xws}", h.GetUpgrade)

	r.Post("/reinit_db", h.Reinit)
	return r
}

// Healthz reports liveness
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetFaction returns one faction
func (h *Handler) GetFaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "xws")
	result, err := h.repo.LookupFaction(r.Context(), id)
	respondLookup(w, "faction", id, result, err)
}

// GetPilot returns one pilot
func (h *Handler) GetPilot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "xws")
	result, err := h.repo.LookupPilot(r.Context(), id)
	respondLookup(w, "pilot", id, result, err)
}

// GetPilotShip returns the ship a pilot flies
func (h *Handler) GetPilotShip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "xws")
	result, err := h.repo.LookupShipForPilot(r.Context(), id)
	respondLookup(w, "ship for pilot", id, result, err)
}

// GetUpgrade returns one upgrade
func (h *Handler) GetUpgrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "xws")
	result, err := h.repo.LookupUpgrade(r.Context(), id)
	respondLookup(w, "upgrade", id, result, err)
}

// Reinit rebuilds the reference store and probes it
func (h *Handler) Reinit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx, h.logger)

	out, err := h.importer.Prepare(ctx, &importer.PrepareInput{Root: h.dataRoot})
	if err != nil {
		log.Error("Reinitialization failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errors.GetMessage(err)})
		return
	}

	probe, err := h.repo.LookupPilot(ctx, ProbePilot)
	switch {
	case err != nil:
		log.Error("Reinitialization probe failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errors.GetMessage(err)})
		return
	case probe.IsFound():
		log.Info("Reinitialization successful, probe pilot found", zap.String("pilot", ProbePilot))
	default:
		log.Warn("Reinitialization successful, but probe pilot not found. Check your data.", zap.String("pilot", ProbePilot))
	}

	log.Info("Reference data rebuilt",
		zap.Int("pilots", out.Pilots),
		zap.Strings("skipped_files", out.SkippedFiles))
	writeJSON(w, http.StatusOK, messageResponse{Message: ReinitMessage})
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondLookup[T any](w http.ResponseWriter, kind, id string, result lookup.Result[T], err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	v, ok := result.Get()
	if !ok {
		writeError(w, errors.NotFoundf("%s %s not found", kind, id))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.GetCode(err).HTTPStatus(), errorResponse{Error: errors.GetMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// logRequests logs one line per request and puts a request scoped logger in
// the context
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := h.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), log)))

		log.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}

// Serve runs srv until ctx is done, then shuts it down
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "http server failed")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown failed")
	}
	return <-errCh
}
