package service

import (
	"context"
	"sync"
	"time"

	"pelisrank/internal/cluster"
	"pelisrank/internal/engine"
	"pelisrank/internal/metrics"
	"pelisrank/internal/models"
)

// RatingStore es la vista de solo lectura que necesita la predicción.
// La implementa repository.RatingRepository; en tests alcanza un mapa.
type RatingStore interface {
	RatingsByUser(ctx context.Context, userID int) ([]models.RatingDoc, error)
	RatingsByMovie(ctx context.Context, movieID int) ([]models.RatingDoc, error)
	GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error)
}

// PredictService coordina la predicción: trae los datos del store, y el
// cálculo en sí lo hace el motor puro, local o repartido entre nodos TCP.
type PredictService struct {
	store RatingStore
	// direcciones TCP de los nodos de predicción; vacío = local
	nodeAddrs []string
}

func NewPredictService(store RatingStore, nodeAddrs []string) *PredictService {
	return &PredictService{store: store, nodeAddrs: nodeAddrs}
}

// PredictionOutcome distingue explícitamente "sin predicción" de un score
// legítimo: Score solo vale si OK es true.
type PredictionOutcome struct {
	MovieID      int
	Score        float64
	OK           bool
	Used         int  // vecinos con similitud positiva
	Candidates   int  // usuarios que calificaron la película
	AlreadyRated bool // el usuario ya tiene rating propio para la película
	OwnScore     int
}

// Predict estima el rating que userID le daría a movieID.
//
// Si el usuario ya calificó la película no hay nada que predecir: devolvemos
// su score real con AlreadyRated (la predicción no excluye self-ratings, el
// chequeo previo es el que garantiza que nunca haya uno entre los candidatos).
func (s *PredictService) Predict(ctx context.Context, userID, movieID int) (*PredictionOutcome, error) {
	own, err := s.store.GetOne(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if own != nil {
		return &PredictionOutcome{MovieID: movieID, AlreadyRated: true, OwnScore: own.Score}, nil
	}

	target, err := s.store.RatingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	movieRatings, err := s.store.RatingsByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	outcome := &PredictionOutcome{MovieID: movieID, Candidates: len(movieRatings)}
	if len(movieRatings) == 0 || len(target) == 0 {
		metrics.PredictionsNoSignal.Inc()
		return outcome, nil
	}

	start := time.Now()

	var partial engine.Partial
	if len(s.nodeAddrs) > 0 {
		partial, err = s.fanOut(ctx, userID, movieID, target, movieRatings)
	} else {
		partial, err = s.computeLocal(ctx, target, movieRatings)
	}
	if err != nil {
		return nil, err
	}

	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.Inc()

	outcome.Used = partial.Used
	outcome.Score, outcome.OK = partial.Score()
	if !outcome.OK {
		metrics.PredictionsNoSignal.Inc()
	}
	return outcome, nil
}

// computeLocal trae los ratings de cada candidato y deja el promedio
// ponderado en manos del motor.
func (s *PredictService) computeLocal(ctx context.Context, target, movieRatings []models.RatingDoc) (engine.Partial, error) {
	neighbors := make(map[int][]models.RatingDoc, len(movieRatings))
	for _, r := range movieRatings {
		if _, ok := neighbors[r.UserID]; ok {
			continue
		}
		ratings, err := s.store.RatingsByUser(ctx, r.UserID)
		if err != nil {
			return engine.Partial{}, err
		}
		neighbors[r.UserID] = ratings
	}
	return engine.Accumulate(target, movieRatings, neighbors), nil
}

// fanOut reparte los candidatos entre los nodos por índice (idx % shards) y
// combina los parciales num/den. Si algún nodo falla seguimos con lo que
// respondió el resto; si fallaron todos, devolvemos el primer error.
func (s *PredictService) fanOut(ctx context.Context, userID, movieID int, target, movieRatings []models.RatingDoc) (engine.Partial, error) {
	shards := len(s.nodeAddrs)

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resCh := make(chan *cluster.PredictResponse, shards)
	errCh := make(chan error, shards)

	var wg sync.WaitGroup
	for shardID, addr := range s.nodeAddrs {
		wg.Add(1)
		task := &cluster.PredictTask{
			TargetUserID:  userID,
			MovieID:       movieID,
			ShardID:       shardID,
			Shards:        shards,
			TargetRatings: target,
			MovieRatings:  movieRatings,
		}
		go func(addr string, t *cluster.PredictTask) {
			defer wg.Done()
			resp, err := cluster.SendTask(ctxTimeout, addr, t)
			if err != nil {
				errCh <- err
				return
			}
			resCh <- resp
		}(addr, task)
	}

	wg.Wait()
	close(resCh)
	close(errCh)

	if len(resCh) == 0 && len(errCh) > 0 {
		// si todos fallaron
		return engine.Partial{}, <-errCh
	}

	var combined engine.Partial
	for resp := range resCh {
		combined = combined.Add(resp.Partial)
	}
	return combined, nil
}

// Similarity compara dos usuarios por sus ratings (correlación de Pearson
// sobre películas en común).
func (s *PredictService) Similarity(ctx context.Context, userA, userB int) (float64, error) {
	a, err := s.store.RatingsByUser(ctx, userA)
	if err != nil {
		return 0, err
	}
	b, err := s.store.RatingsByUser(ctx, userB)
	if err != nil {
		return 0, err
	}
	return engine.Similarity(a, b), nil
}

// NodeAddrs expone las direcciones configuradas (para el WS de progreso y
// el chequeo de mantenimiento).
func (s *PredictService) NodeAddrs() []string {
	return s.nodeAddrs
}
