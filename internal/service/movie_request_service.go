package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pelisrank/internal/models"
	"pelisrank/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMovieRequestNotFound = errors.New("movie request not found")

type MovieRequestService struct {
	repo     *repository.MovieRequestRepository
	movieSvc *MovieService
}

func NewMovieRequestService(repo *repository.MovieRequestRepository, movieSvc *MovieService) *MovieRequestService {
	return &MovieRequestService{repo: repo, movieSvc: movieSvc}
}

// Crear request (user)
func (s *MovieRequestService) CreateRequest(ctx context.Context, userID int, req *models.MovieCreateRequest) (*models.MovieRequest, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title es requerido")
	}

	now := time.Now()
	mr := &models.MovieRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    models.MovieRequestStatusPending,
		Movie:     *req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}

func (s *MovieRequestService) ListByUser(ctx context.Context, userID int) ([]models.MovieRequest, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *MovieRequestService) ListAll(ctx context.Context, status string) ([]models.MovieRequest, error) {
	return s.repo.List(ctx, status)
}

// Approve crea la película real y marca el request como aprobado.
func (s *MovieRequestService) Approve(ctx context.Context, id primitive.ObjectID) (*models.MovieRequest, error) {
	mr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mr == nil {
		return nil, ErrMovieRequestNotFound
	}
	if mr.Status != models.MovieRequestStatusPending {
		return nil, fmt.Errorf("el request ya fue resuelto (status=%s)", mr.Status)
	}

	movie, err := s.movieSvc.CreateMovie(ctx, &mr.Movie)
	if err != nil {
		return nil, err
	}

	mr.Status = models.MovieRequestStatusApproved
	mr.ApprovedMovieID = &movie.MovieID
	mr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}

func (s *MovieRequestService) Reject(ctx context.Context, id primitive.ObjectID, reason string) (*models.MovieRequest, error) {
	mr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mr == nil {
		return nil, ErrMovieRequestNotFound
	}
	if mr.Status != models.MovieRequestStatusPending {
		return nil, fmt.Errorf("el request ya fue resuelto (status=%s)", mr.Status)
	}

	mr.Status = models.MovieRequestStatusRejected
	mr.Reason = reason
	mr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}
