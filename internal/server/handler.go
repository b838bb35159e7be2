package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/netmon"
	"github.com/dinespot/dinesync/internal/service"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

// Handler serves the local API: diagnostics endpoints over the running sync
// engine plus the domain CRUD surface consumed by the embedding application.
type Handler struct {
	logger   *logger.Logger
	engine   *service.SyncEngine
	queue    store.PendingQueue
	monitor  *netmon.Monitor
	services Services
}

func NewHandler(engine *service.SyncEngine, queue store.PendingQueue, monitor *netmon.Monitor, services Services, log *logger.Logger) *Handler {
	return &Handler{logger: log, engine: engine, queue: queue, monitor: monitor, services: services}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/status", h.status)
	router.Post("/sync", h.triggerSync)
	router.Get("/conflicts", h.conflicts)
	router.Post("/conflicts/{table}/{id}/resolve", h.resolveConflict)

	h.domainRoutes(router)

	return router
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusResponse struct {
	Network    string             `json:"network"`
	PendingOps int                `json:"pending_operations"`
	Conflicts  int                `json:"conflicts"`
	LastSync   *models.SyncResult `json:"last_sync,omitempty"`
	SyncHasRun bool               `json:"sync_has_run"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	pending, err := h.queue.Len(r.Context())
	if err != nil {
		h.logger.Err(err).Msg("failed to read queue length")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "queue unavailable"})
		return
	}

	resp := statusResponse{
		Network:    string(h.monitor.Status()),
		PendingOps: pending,
		Conflicts:  len(h.engine.Conflicts()),
	}
	if last, ok := h.engine.LastResult(); ok {
		resp.LastSync = &last
		resp.SyncHasRun = true
	}
	writeJSON(w, http.StatusOK, resp)
}

// triggerSync runs a sync pass inline. A pass already in progress comes back
// as 409 with the failed result attached.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	var opts models.SyncOptions
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed sync options"})
			return
		}
	}

	res := h.engine.Sync(r.Context(), opts)
	status := http.StatusOK
	if !res.Success {
		status = http.StatusConflict
		for _, e := range res.Errors {
			if e != service.ErrSyncInProgress.Error() {
				status = http.StatusBadGateway
				break
			}
		}
	}
	writeJSON(w, status, res)
}

func (h *Handler) conflicts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Conflicts())
}

type resolveRequest struct {
	Resolution models.Resolution `json:"resolution"`
}

func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	table := models.EntityTable(chi.URLParam(r, "table"))
	id := chi.URLParam(r, "id")
	if !table.Valid() || id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown table or empty id"})
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed resolution"})
		return
	}

	if err := h.engine.ResolveConflict(r.Context(), table, id, req.Resolution); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, service.ErrConflictNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encode errors past this point mean a broken connection; nothing useful
	// to report to the client anymore.
	_ = json.NewEncoder(w).Encode(v)
}
