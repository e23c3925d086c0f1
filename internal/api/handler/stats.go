package handler

import (
	"net/http"

	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/core"
)

// Stats serves the aggregate dashboard counts.
type Stats struct {
	svc *core.StatsService
}

func NewStats(svc *core.StatsService) *Stats {
	return &Stats{svc: svc}
}

// Get returns the caller's customer count and active matter count.
func (h *Stats) Get(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	stats, err := h.svc.ForUser(r.Context(), identity.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.WriteJSON(w, http.StatusOK, stats)
}
