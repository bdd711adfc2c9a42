package models

type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

type MovieDoc struct {
	MovieID     int          `json:"movieId" bson:"movieId"`
	Title       string       `json:"title" bson:"title"`
	ReleasedAt  string       `json:"releasedAt,omitempty" bson:"releasedAt,omitempty"`
	IMDBURL     string       `json:"imdbUrl,omitempty" bson:"imdbUrl,omitempty"`
	Genres      []string     `json:"genres,omitempty" bson:"genres,omitempty"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt   string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear una película (lo que expondremos en la API)
type MovieCreateRequest struct {
	Title      string   `json:"title"` // obligatorio
	ReleasedAt string   `json:"releasedAt,omitempty"`
	IMDBURL    string   `json:"imdbUrl,omitempty"`
	Genres     []string `json:"genres,omitempty"`
}

// Payload para actualización parcial de película
type MovieUpdateRequest struct {
	Title      *string   `json:"title,omitempty"`
	ReleasedAt *string   `json:"releasedAt,omitempty"`
	IMDBURL    *string   `json:"imdbUrl,omitempty"`
	Genres     *[]string `json:"genres,omitempty"`
}
