package service

import (
	"context"
	"fmt"
	"time"

	"pelisrank/internal/models"
	"pelisrank/internal/repository"
)

type RatingService struct {
	ratings  *repository.RatingRepository
	movies   *repository.MovieRepository
	scoreMin int
	scoreMax int
}

func NewRatingService(r *repository.RatingRepository, m *repository.MovieRepository, scoreMin, scoreMax int) *RatingService {
	return &RatingService{
		ratings:  r,
		movies:   m,
		scoreMin: scoreMin,
		scoreMax: scoreMax,
	}
}

// AddOrUpdate hace upsert del rating y mantiene al día el ratingStats de la
// película con la fórmula incremental (sin releer todos los ratings).
func (s *RatingService) AddOrUpdate(ctx context.Context, userID, movieID, score int) error {
	// el rango lo validamos acá, el motor consume el score tal cual
	if score < s.scoreMin || score > s.scoreMax {
		return fmt.Errorf("score fuera de rango (%d..%d)", s.scoreMin, s.scoreMax)
	}

	// 1) Ver si ya existía un rating previo
	prev, err := s.ratings.GetOne(ctx, userID, movieID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return fmt.Errorf("movie %d no encontrada", movieID)
	}

	// 2) Upsert del rating (guarda timestamp como epoch)
	if err := s.ratings.UpsertRating(ctx, userID, movieID, score); err != nil {
		return err
	}

	// 3) Actualizar stats de la película
	if movie.RatingStats == nil {
		movie.RatingStats = &models.RatingStats{}
	}
	rs := movie.RatingStats

	var prevScore int
	if existedBefore {
		prevScore = prev.Score
	}
	applyRating(rs, existedBefore, prevScore, score)

	nowStr := time.Now().UTC().Format(time.RFC3339)
	rs.LastRatedAt = nowStr
	movie.UpdatedAt = nowStr

	return s.movies.Update(ctx, movie)
}

// applyRating ajusta average/count en float64 para no acumular error de
// redondeo entero. Con un update de rating existente el count no cambia.
func applyRating(rs *models.RatingStats, existedBefore bool, prevScore, score int) {
	if !existedBefore {
		total := rs.Average*float64(rs.Count) + float64(score)
		rs.Count++
		rs.Average = total / float64(rs.Count)
		return
	}
	if rs.Count > 0 {
		total := rs.Average*float64(rs.Count) - float64(prevScore) + float64(score)
		rs.Average = total / float64(rs.Count)
	}
}

func (s *RatingService) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
