package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pelisrank/internal/models"
	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieRequestHandler struct {
	svc *service.MovieRequestService
}

func NewMovieRequestHandler(s *service.MovieRequestService) *MovieRequestHandler {
	return &MovieRequestHandler{svc: s}
}

// @Summary Proponer una película nueva
// @Tags movie-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.MovieCreateRequest true "película propuesta"
// @Success 201 {object} models.MovieRequest
// @Router /me/movie-requests [post]
func (h *MovieRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mr, err := h.svc.CreateRequest(r.Context(), UserIDFromContext(r.Context()), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(mr)
}

// @Summary Mis requests de películas
// @Tags movie-requests
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MovieRequest
// @Router /me/movie-requests [get]
func (h *MovieRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := h.svc.ListByUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Listar requests de películas (ADMIN)
// @Tags movie-requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected|all (default: all)"
// @Success 200 {array} models.MovieRequest
// @Router /admin/movie-requests [get]
func (h *MovieRequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := h.svc.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

func requestIDParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// @Summary Aprobar request (ADMIN): crea la película real
// @Tags movie-requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "id del request"
// @Success 200 {object} models.MovieRequest
// @Router /admin/movie-requests/{id}/approve [post]
func (h *MovieRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := requestIDParam(r)
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	mr, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMovieRequestNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(mr)
}

// @Summary Rechazar request (ADMIN)
// @Tags movie-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "id del request"
// @Param body body models.RejectMovieRequest false "motivo"
// @Success 200 {object} models.MovieRequest
// @Router /admin/movie-requests/{id}/reject [post]
func (h *MovieRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := requestIDParam(r)
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	var body models.RejectMovieRequest
	_ = json.NewDecoder(r.Body).Decode(&body)

	mr, err := h.svc.Reject(r.Context(), id, body.Reason)
	if err != nil {
		if errors.Is(err, service.ErrMovieRequestNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(mr)
}
