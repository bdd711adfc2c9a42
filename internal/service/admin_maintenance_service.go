package service

import (
	"context"
	"log"
	"net"
	"sync"
	"time"

	"pelisrank/internal/models"
	"pelisrank/internal/repository"
)

// AdminMaintenanceService: tareas de mantenimiento del dataset. El
// ratingStats de cada película se mantiene incremental en cada upsert, pero
// después de una carga masiva (o un bug) conviene poder recalcularlo entero.
type AdminMaintenanceService struct {
	users     *repository.UserRepository
	movies    *repository.MovieRepository
	ratings   *repository.RatingRepository
	movieSvc  *MovieService
	nodeAddrs []string
}

func NewAdminMaintenanceService(
	users *repository.UserRepository,
	movies *repository.MovieRepository,
	ratings *repository.RatingRepository,
	movieSvc *MovieService,
	nodeAddrs []string,
) *AdminMaintenanceService {
	return &AdminMaintenanceService{
		users:     users,
		movies:    movies,
		ratings:   ratings,
		movieSvc:  movieSvc,
		nodeAddrs: nodeAddrs,
	}
}

// ---------------------- SUMMARY ----------------------

func (s *AdminMaintenanceService) GetDatasetSummary(ctx context.Context) (*models.AdminDatasetSummary, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMovies, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	withStats, err := s.movies.CountWithStats(ctx)
	if err != nil {
		return nil, err
	}

	withoutStats := totalMovies - withStats
	if withoutStats < 0 {
		withoutStats = 0
	}

	return &models.AdminDatasetSummary{
		TotalUsers:         totalUsers,
		TotalMovies:        totalMovies,
		TotalRatings:       totalRatings,
		MoviesWithStats:    withStats,
		MoviesWithoutStats: withoutStats,
	}, nil
}

// ---------------------- REBUILD STATS ----------------------

// RebuildStats recalcula ratingStats de todo el catálogo: una sola
// agregación sobre ratings y después updates por película con paralelismo
// acotado. Las películas sin ratings quedan con stats en cero.
func (s *AdminMaintenanceService) RebuildStats(ctx context.Context, req models.RebuildStatsRequest) (*models.RebuildStatsResult, error) {
	if req.Parallelism <= 0 {
		req.Parallelism = 4
	}

	start := time.Now()

	stats, err := s.ratings.AggregateMovieStats(ctx)
	if err != nil {
		return nil, err
	}

	movieIDs, err := s.movies.AllIDs(ctx)
	if err != nil {
		return nil, err
	}

	lastRated := time.Now().UTC().Format(time.RFC3339)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		updated int
		cleared int
	)
	sem := make(chan struct{}, req.Parallelism)

	for _, movieID := range movieIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(movieID int) {
			defer wg.Done()
			defer func() { <-sem }()

			newStats := &models.RatingStats{}
			agg, ok := stats[movieID]
			if ok {
				newStats.Average = agg.Average
				newStats.Count = agg.Count
				newStats.LastRatedAt = lastRated
			}

			if err := s.movies.UpdateStats(ctx, movieID, newStats); err != nil {
				log.Printf("[maintenance] error actualizando stats de movie %d: %v", movieID, err)
				return
			}

			mu.Lock()
			if ok {
				updated++
			} else {
				cleared++
			}
			mu.Unlock()
		}(movieID)
	}
	wg.Wait()

	// el top cacheado quedó viejo después de tocar todos los stats
	s.movieSvc.InvalidateTopCache(ctx)

	return &models.RebuildStatsResult{
		ProcessedMovies: len(movieIDs),
		UpdatedMovies:   updated,
		ClearedMovies:   cleared,
		Elapsed:         time.Since(start).String(),
	}, nil
}

// ---------------------- NODOS ----------------------

// CheckNodes prueba conectividad TCP contra cada nodo de predicción.
func (s *AdminMaintenanceService) CheckNodes(_ context.Context) []models.PredNodeStatus {
	out := make([]models.PredNodeStatus, 0, len(s.nodeAddrs))
	for _, addr := range s.nodeAddrs {
		status := models.PredNodeStatus{Addr: addr}
		conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
		if err != nil {
			status.Error = err.Error()
		} else {
			status.Reachable = true
			conn.Close()
		}
		out = append(out, status)
	}
	return out
}
