package main

import (
	"log"
	"net/http"

	_ "pelisrank/docs" // swagger docs

	"pelisrank/internal/cache"
	"pelisrank/internal/config"
	"pelisrank/internal/db"
	"pelisrank/internal/handler"
	"pelisrank/internal/metrics"
	"pelisrank/internal/repository"
	"pelisrank/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Pelisrank API
// @version 1.0
// @description API de ratings de películas con predicción colaborativa (Pearson user-based, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	movieReqRepo := repository.NewMovieRequestRepository()
	ratingRepo := repository.NewRatingRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	movieReqSvc := service.NewMovieRequestService(movieReqRepo, movieSvc)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo, cfg.ScoreMin, cfg.ScoreMax)
	// coordinador de predicciones: local o repartido entre nodos TCP
	predictSvc := service.NewPredictService(ratingRepo, cfg.PredNodeAddrs)
	adminMaintSvc := service.NewAdminMaintenanceService(userRepo, movieRepo, ratingRepo, movieSvc, cfg.PredNodeAddrs)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc, predictSvc)
	movieReqH := handler.NewMovieRequestHandler(movieReqSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	predictH := handler.NewPredictHandler(predictSvc)
	adminMaintH := handler.NewAdminMaintenanceHandler(adminMaintSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas; el detalle suma rating/predicción si hay token)
	r.With(handler.OptionalJWT(cfg.JWTSecret)).Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)

			r.Get("/predictions/{movieId}", predictH.GetMyPrediction)
			r.Get("/similarity/{otherId}", predictH.GetMySimilarity)

			// WebSocket
			r.Get("/ws/predictions/{movieId}", predictH.GetMyPredictionWS)

			// movie requests (USER)
			r.Get("/movie-requests", movieReqH.ListMine)
			r.Post("/movie-requests", movieReqH.Create)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión de películas
			r.Post("/admin/movies", movieH.CreateMovie)
			r.Put("/admin/movies/{id}", movieH.UpdateMovie)

			// ratings y predicciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				r.Get("/predictions/{movieId}", predictH.GetPrediction)
			})

			// movie-requests (ADMIN)
			r.Get("/admin/movie-requests", movieReqH.ListAll)
			r.Post("/admin/movie-requests/{id}/approve", movieReqH.Approve)
			r.Post("/admin/movie-requests/{id}/reject", movieReqH.Reject)

			// --- mantenimiento del dataset ---
			handler.MountAdminMaintenanceRoutes(r, adminMaintH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
