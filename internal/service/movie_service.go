package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pelisrank/internal/cache"
	"pelisrank/internal/models"
	"pelisrank/internal/repository"
)

var ErrMovieAlreadyExists = errors.New("movie already exists")

const (
	topCacheTTLSeconds    = 5 * 60
	searchCacheTTLSeconds = 60
	// se cachea la lista completa por métrica y se recorta al servir,
	// así la invalidación es un Del de dos claves
	topCacheMax = 100
)

func topCacheKeys() []string {
	return []string{"movies:top:popular", "movies:top:rating"}
}

type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(m *repository.MovieRepository) *MovieService {
	return &MovieService{movies: m}
}

func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, id)
}

// Search con cache corta: las búsquedas repetidas del buscador pegan
// siempre con los mismos parámetros, TTL chico y listo (solo catálogo,
// nunca se cachean similitudes ni predicciones).
func (s *MovieService) Search(ctx context.Context, q, genre string, limit, offset int) ([]models.MovieDoc, error) {
	key := fmt.Sprintf("movies:search:%s:%s:%d:%d", q, genre, limit, offset)

	var cached []models.MovieDoc
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	movies, err := s.movies.Search(ctx, q, genre, limit, offset)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, key, movies, searchCacheTTLSeconds); err != nil {
		log.Printf("[movies] error cacheando búsqueda en Redis: %v", err)
	}
	return movies, nil
}

// Top con cache Redis: la portada pega acá en cada carga y el ranking
// cambia lento, 5 minutos de TTL alcanzan.
func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	if limit <= 0 || limit > topCacheMax {
		limit = topCacheMax
	}
	key := "movies:top:" + metric

	var cached []models.MovieDoc
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	movies, err := s.movies.Top(ctx, metric, topCacheMax)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, key, movies, topCacheTTLSeconds); err != nil {
		log.Printf("[movies] error cacheando top en Redis: %v", err)
	}
	if len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

// InvalidateTopCache tira las listas cacheadas; se llama después de un
// rebuild de stats para que el ranking no quede 5 minutos desfasado.
func (s *MovieService) InvalidateTopCache(ctx context.Context) {
	if err := cache.Del(ctx, topCacheKeys()...); err != nil {
		log.Printf("[movies] error invalidando cache de top: %v", err)
	}
}

// ====== ADMIN: crear / actualizar ======

func (s *MovieService) CreateMovie(ctx context.Context, req *models.MovieCreateRequest) (*models.MovieDoc, error) {
	existing, err := s.movies.FindByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMovieAlreadyExists
	}

	nextID, err := s.movies.GetNextMovieID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m := &models.MovieDoc{
		MovieID:    nextID,
		Title:      req.Title,
		ReleasedAt: req.ReleasedAt,
		IMDBURL:    req.IMDBURL,
		Genres:     req.Genres,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, movieID int, req *models.MovieUpdateRequest) (*models.MovieDoc, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		m.Title = *req.Title
	}
	if req.ReleasedAt != nil {
		m.ReleasedAt = *req.ReleasedAt
	}
	if req.IMDBURL != nil {
		m.IMDBURL = *req.IMDBURL
	}
	if req.Genres != nil {
		m.Genres = *req.Genres
	}
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.movies.Update(ctx, m); err != nil {
		return nil, err
	}
	s.InvalidateTopCache(ctx)
	return m, nil
}
