package handler

import (
	"encoding/json"
	"net/http"

	"pelisrank/internal/models"
	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
)

type AdminMaintenanceHandler struct {
	svc *service.AdminMaintenanceService
}

func NewAdminMaintenanceHandler(s *service.AdminMaintenanceService) *AdminMaintenanceHandler {
	return &AdminMaintenanceHandler{svc: s}
}

// MountAdminMaintenanceRoutes cuelga las rutas de mantenimiento bajo
// /admin/maintenance (el caller ya aplicó JWT + AdminOnly).
func MountAdminMaintenanceRoutes(r chi.Router, h *AdminMaintenanceHandler) {
	r.Route("/admin/maintenance", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Post("/rebuild-stats", h.RebuildStats)
		r.Get("/nodes", h.Nodes)
	})
}

// @Summary Resumen del dataset (ADMIN)
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdminDatasetSummary
// @Router /admin/maintenance/summary [get]
func (h *AdminMaintenanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.GetDatasetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

// @Summary Recalcular ratingStats de todo el catálogo (ADMIN)
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.RebuildStatsRequest false "opciones"
// @Success 200 {object} models.RebuildStatsResult
// @Router /admin/maintenance/rebuild-stats [post]
func (h *AdminMaintenanceHandler) RebuildStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RebuildStatsRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	result, err := h.svc.RebuildStats(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Conectividad de los nodos de predicción (ADMIN)
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PredNodeStatus
// @Router /admin/maintenance/nodes [get]
func (h *AdminMaintenanceHandler) Nodes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.CheckNodes(r.Context()))
}
