package cluster

import (
	"pelisrank/internal/engine"
	"pelisrank/internal/models"
)

// Tarea enviada desde el coordinador (API) a cada nodo de predicción.
// Lleva los ratings del usuario objetivo y los de la película completos;
// cada nodo procesa solo los candidatos de su shard (idx % Shards == ShardID).
type PredictTask struct {
	TargetUserID  int                `json:"targetUserId"`
	MovieID       int                `json:"movieId"`
	ShardID       int                `json:"shardId"` // id del shard (0..Shards-1)
	Shards        int                `json:"shards"`  // total de shards/nodos
	TargetRatings []models.RatingDoc `json:"targetRatings"`
	MovieRatings  []models.RatingDoc `json:"movieRatings"`
}

// Respuesta de un nodo de predicción a la API. El parcial trae num/den
// para que el coordinador combine sin perder precisión entre shards.
type PredictResponse struct {
	ShardID int            `json:"shardId"`
	Partial engine.Partial `json:"partial"`
}
