package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"pelisrank/internal/models"
	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc     *service.MovieService
	predict *service.PredictService
}

func NewMovieHandler(s *service.MovieService, p *service.PredictService) *MovieHandler {
	return &MovieHandler{svc: s, predict: p}
}

// Detalle de película: si hay un usuario logueado sumamos su rating (si
// existe) o la predicción (si no). prediction viene null cuando no hay
// señal, nunca un 0.0 inventado.
type movieDetailResponse struct {
	models.MovieDoc
	UserScore  *int     `json:"userScore,omitempty"`
	Prediction *float64 `json:"prediction,omitempty"`
}

// @Summary Detalle de película
// @Description Con token (opcional) incluye el rating propio o el score predicho
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} movieDetailResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	m, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if m == nil {
		http.NotFound(w, r)
		return
	}

	resp := movieDetailResponse{MovieDoc: *m}

	if userID := UserIDFromContext(r.Context()); userID > 0 {
		out, err := h.predict.Predict(r.Context(), userID, id)
		if err != nil {
			// el detalle sigue sirviendo sin la predicción
			log.Printf("[movies] error prediciendo movie=%d user=%d: %v", id, userID, err)
		} else if out.AlreadyRated {
			resp.UserScore = &out.OwnScore
		} else if out.OK {
			score := out.Score
			resp.Prediction = &score
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Buscar / listar películas (paginado, ordenado por título)
// @Tags movies
// @Produce json
// @Param q query string false "búsqueda por título"
// @Param genre query string false "filtrar por género"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.MovieDoc
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	movies, err := h.svc.Search(r.Context(), q, genre, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Top películas (popularidad o rating)
// @Tags movies
// @Produce json
// @Param metric query string false "popular|rating (default: popular)"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.MovieDoc
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "popular"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	movies, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// ====== ADMIN: crear / actualizar películas ======

// @Summary Crear nueva película
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.MovieCreateRequest true "Datos de la película"
// @Success 201 {object} models.MovieDoc
// @Router /admin/movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "body inválido (title requerido)", http.StatusBadRequest)
		return
	}

	movie, err := h.svc.CreateMovie(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMovieAlreadyExists) {
			http.Error(w, "ya existe una película con ese título", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Actualizar película existente
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "movieId"
// @Param body body models.MovieUpdateRequest true "Campos a actualizar"
// @Success 200 {object} models.MovieDoc
// @Router /admin/movies/{id} [put]
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	movie, err := h.svc.UpdateMovie(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if movie == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(movie)
}
