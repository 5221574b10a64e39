package restserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/windshadowstudio/engine/internal/constants"
	"github.com/windshadowstudio/engine/internal/job"
	"github.com/windshadowstudio/engine/pkg/config"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{controller: ctrl}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// Health reports service liveness plus the reference timezone and year.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"timezone": constants.ProjectTimezone,
		"year":     constants.TypicalYear,
	})
}

// RunJob submits a simulation run and returns its job id without
// waiting for the run to finish.
func (h *Handlers) RunJob(w http.ResponseWriter, r *http.Request) {
	var p config.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id := h.controller.jobs.Submit(&p)
	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

// GetJob returns the current snapshot of a job.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := h.controller.jobs.Query(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetJobFile serves a produced output artifact by kind.
func (h *Handlers) GetJobFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	path, err := h.controller.jobs.OutputPath(vars["id"], vars["kind"])
	switch {
	case errors.Is(err, job.ErrJobNotFound):
		respondError(w, http.StatusNotFound, "job not found")
		return
	case errors.Is(err, job.ErrOutputNotFound):
		respondError(w, http.StatusNotFound, "file kind not available")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.ServeFile(w, r, path)
}
