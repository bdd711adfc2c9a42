package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type PredictHandler struct {
	svc *service.PredictService
}

func NewPredictHandler(s *service.PredictService) *PredictHandler {
	return &PredictHandler{svc: s}
}

// prediction queda null cuando no hay ningún vecino con similitud positiva;
// available distingue ese caso de un score legítimo (incluso 0.0).
type predictionResponse struct {
	MovieID    int      `json:"movieId"`
	Prediction *float64 `json:"prediction"`
	Available  bool     `json:"available"`
	Candidates int      `json:"candidates"`
	Used       int      `json:"used"`
	UserScore  *int     `json:"userScore,omitempty"`
}

func toPredictionResponse(out *service.PredictionOutcome) predictionResponse {
	resp := predictionResponse{
		MovieID:    out.MovieID,
		Available:  out.OK,
		Candidates: out.Candidates,
		Used:       out.Used,
	}
	if out.OK {
		score := out.Score
		resp.Prediction = &score
	}
	if out.AlreadyRated {
		own := out.OwnScore
		resp.UserScore = &own
	}
	return resp
}

func (h *PredictHandler) predictFor(w http.ResponseWriter, r *http.Request, userID int) {
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	out, err := h.svc.Predict(r.Context(), userID, movieID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(toPredictionResponse(out))
}

// @Summary Score predicho para una película que todavía no califiqué
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Param movieId path int true "movieId"
// @Success 200 {object} predictionResponse
// @Router /me/predictions/{movieId} [get]
func (h *PredictHandler) GetMyPrediction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.predictFor(w, r, UserIDFromContext(r.Context()))
}

// @Summary Predicción para cualquier usuario (ADMIN)
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param movieId path int true "movieId"
// @Success 200 {object} predictionResponse
// @Router /users/{id}/predictions/{movieId} [get]
func (h *PredictHandler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.predictFor(w, r, userID)
}

// @Summary Similitud de Pearson entre mi usuario y otro
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Param otherId path int true "userId del otro usuario"
// @Success 200 {object} map[string]any
// @Router /me/similarity/{otherId} [get]
func (h *PredictHandler) GetMySimilarity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	otherID, _ := strconv.Atoi(chi.URLParam(r, "otherId"))

	sim, err := h.svc.Similarity(r.Context(), userID, otherID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"userId":     userID,
		"otherId":    otherID,
		"similarity": sim,
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Predicción en tiempo real (WebSocket)
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Param movieId path int true "movieId"
// @Success 200 {object} map[string]any
// @Router /me/ws/predictions/{movieId} [get]
func (h *PredictHandler) GetMyPredictionWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "no se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "conexión WS abierta, iniciando cálculo",
	})

	// un frame de progreso por shard (o uno solo si el cálculo es local)
	shards := len(h.svc.NodeAddrs())
	if shards == 0 {
		shards = 1
	}
	for i := 1; i <= shards; i++ {
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"shard": i,
			"total": shards,
		})
	}

	out, err := h.svc.Predict(r.Context(), userID, movieID)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "prediction",
		"userId":      userID,
		"result":      toPredictionResponse(out),
		"generatedAt": time.Now(),
	})
}
