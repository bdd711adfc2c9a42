package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"pelisrank/internal/models"
	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
)

type memStore map[int][]models.RatingDoc

func (m memStore) RatingsByUser(_ context.Context, userID int) ([]models.RatingDoc, error) {
	return m[userID], nil
}

func (m memStore) RatingsByMovie(_ context.Context, movieID int) ([]models.RatingDoc, error) {
	var out []models.RatingDoc
	for _, ratings := range m {
		for _, r := range ratings {
			if r.MovieID == movieID {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (m memStore) GetOne(_ context.Context, userID, movieID int) (*models.RatingDoc, error) {
	for _, r := range m[userID] {
		if r.MovieID == movieID {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func testRouter(store memStore) chi.Router {
	predictSvc := service.NewPredictService(store, nil)
	predictH := NewPredictHandler(predictSvc)

	r := chi.NewRouter()
	r.Get("/me/predictions/{movieId}", predictH.GetMyPrediction)
	r.Get("/me/similarity/{otherId}", predictH.GetMySimilarity)
	return r
}

func withUser(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), CtxUserID, userID)
	return r.WithContext(ctx)
}

func testStore() memStore {
	return memStore{
		1: {{UserID: 1, MovieID: 1, Score: 5}, {UserID: 1, MovieID: 2, Score: 3}},
		2: {{UserID: 2, MovieID: 1, Score: 4}, {UserID: 2, MovieID: 2, Score: 2}, {UserID: 2, MovieID: 10, Score: 5}},
		3: {{UserID: 3, MovieID: 1, Score: 1}, {UserID: 3, MovieID: 2, Score: 5}, {UserID: 3, MovieID: 10, Score: 1}},
	}
}

func TestGetMyPrediction(t *testing.T) {
	router := testRouter(testStore())

	req := withUser(httptest.NewRequest("GET", "/me/predictions/10", nil), 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		MovieID    int      `json:"movieId"`
		Prediction *float64 `json:"prediction"`
		Available  bool     `json:"available"`
		Candidates int      `json:"candidates"`
		Used       int      `json:"used"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !resp.Available || resp.Prediction == nil {
		t.Fatalf("esperaba predicción disponible, resp = %+v", resp)
	}
	if math.Abs(*resp.Prediction-5.0) > 1e-9 {
		t.Fatalf("prediction = %v, esperaba 5.0", *resp.Prediction)
	}
	if resp.Candidates != 2 || resp.Used != 1 {
		t.Fatalf("candidates/used = %d/%d, esperaba 2/1", resp.Candidates, resp.Used)
	}
}

func TestGetMyPredictionNoSignal(t *testing.T) {
	store := testStore()
	store[4] = []models.RatingDoc{{UserID: 4, MovieID: 99, Score: 3}}
	router := testRouter(store)

	req := withUser(httptest.NewRequest("GET", "/me/predictions/10", nil), 4)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Prediction *float64 `json:"prediction"`
		Available  bool     `json:"available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// "sin predicción" viaja como null explícito, nunca como 0.0
	if resp.Available || resp.Prediction != nil {
		t.Fatalf("esperaba prediction null, resp = %+v", resp)
	}
}

func TestGetMyPredictionAlreadyRated(t *testing.T) {
	router := testRouter(testStore())

	req := withUser(httptest.NewRequest("GET", "/me/predictions/10", nil), 2)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Prediction *float64 `json:"prediction"`
		Available  bool     `json:"available"`
		UserScore  *int     `json:"userScore"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UserScore == nil || *resp.UserScore != 5 {
		t.Fatalf("userScore = %v, esperaba 5", resp.UserScore)
	}
	if resp.Available || resp.Prediction != nil {
		t.Fatal("con rating propio no viaja predicción")
	}
}

func TestGetMySimilarity(t *testing.T) {
	router := testRouter(testStore())

	req := withUser(httptest.NewRequest("GET", "/me/similarity/2", nil), 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Similarity float64 `json:"similarity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(resp.Similarity-1.0) > 1e-9 {
		t.Fatalf("similarity = %v, esperaba 1.0", resp.Similarity)
	}
}
