package models

// ----- SUMMARY -----

// AdminDatasetSummary representa el estado global del dataset de ratings.
type AdminDatasetSummary struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalMovies        int64 `json:"totalMovies"`
	TotalRatings       int64 `json:"totalRatings"`
	MoviesWithStats    int64 `json:"moviesWithStats"`
	MoviesWithoutStats int64 `json:"moviesWithoutStats"`
}

// ----- REBUILD STATS -----

// RebuildStatsRequest body de /admin/maintenance/rebuild-stats.
type RebuildStatsRequest struct {
	Parallelism int `json:"parallelism"`
}

// RebuildStatsResult resultado del recálculo de ratingStats.
type RebuildStatsResult struct {
	ProcessedMovies int    `json:"processedMovies"`
	UpdatedMovies   int    `json:"updatedMovies"`
	ClearedMovies   int    `json:"clearedMovies"`
	Elapsed         string `json:"elapsed"`
}

// ----- NODOS DE PREDICCIÓN -----

// PredNodeStatus reachability de un nodo de predicción.
type PredNodeStatus struct {
	Addr      string `json:"addr"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}
