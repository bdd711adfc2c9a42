package repository

import (
	"context"
	"time"

	"pelisrank/internal/db"
	"pelisrank/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// UpsertRating garantiza un documento por par (userId, movieId).
func (r *RatingRepository) UpsertRating(ctx context.Context, userID, movieID, score int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": bson.M{
			"score": score,
			// guardamos epoch (int64)
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	var raw bson.M
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	doc := decodeRating(raw)
	return &doc, nil
}

// helpers de casteo seguro: el dataset importado trae números en tipos
// distintos según cómo se cargó (int32, int64, double)
func asInt(v any) int {
	switch x := v.(type) {
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func decodeRating(raw bson.M) models.RatingDoc {
	return models.RatingDoc{
		UserID:    asInt(raw["userId"]),
		MovieID:   asInt(raw["movieId"]),
		Score:     asInt(raw["score"]),
		Timestamp: asInt64(raw["timestamp"]),
	}
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, decodeRating(raw))
	}
	return out, cur.Err()
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	return r.find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
}

// RatingsByUser trae todos los ratings de un usuario (el set completo que
// necesita el motor de similitud).
func (r *RatingRepository) RatingsByUser(ctx context.Context, userID int) ([]models.RatingDoc, error) {
	return r.GetByUser(ctx, userID, 10000, 0)
}

// RatingsByMovie trae todos los ratings que recibió una película (los
// candidatos de la predicción).
func (r *RatingRepository) RatingsByMovie(ctx context.Context, movieID int) ([]models.RatingDoc, error) {
	return r.find(ctx,
		bson.M{"movieId": movieID},
		options.Find().SetLimit(100000),
	)
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// AggregateMovieStats recalcula average/count por movieId en una sola pasada.
func (r *RatingRepository) AggregateMovieStats(ctx context.Context) (map[int]models.RatingStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     "$movieId",
			"average": bson.M{"$avg": "$score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[int]models.RatingStats)
	for cur.Next(ctx) {
		var doc struct {
			MovieID int     `bson:"_id"`
			Average float64 `bson:"average"`
			Count   int     `bson:"count"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.MovieID] = models.RatingStats{Average: doc.Average, Count: doc.Count}
	}
	return out, cur.Err()
}
