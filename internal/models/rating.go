package models

// Lo que está en Mongo: un documento por par (userId, movieId).
// El score es un entero acotado (1..5); el rango lo valida la capa web,
// el motor de predicción lo consume tal cual.
type RatingDoc struct {
	UserID    int   `json:"userId" bson:"userId"`
	MovieID   int   `json:"movieId" bson:"movieId"`
	Score     int   `json:"score" bson:"score"`
	Timestamp int64 `json:"timestamp" bson:"timestamp"`
}
