package cluster

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"net"
	"time"

	"pelisrank/internal/engine"
	"pelisrank/internal/models"
)

// RatingSource es lo único que un nodo necesita del storage: los ratings
// completos de cada candidato para calcular su similitud con el objetivo.
type RatingSource interface {
	RatingsByUser(ctx context.Context, userID int) ([]models.RatingDoc, error)
}

// Serve atiende tareas de predicción en ln hasta que el listener se cierre.
func Serve(ln net.Listener, nodeID string, source RatingSource) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("[prednode %s] accept error: %v", nodeID, err)
			return
		}
		go handleConn(nodeID, conn, source)
	}
}

func handleConn(nodeID string, conn net.Conn, source RatingSource) {
	defer conn.Close()

	dec := json.NewDecoder(bufio.NewReader(conn))
	var task PredictTask
	if err := dec.Decode(&task); err != nil {
		log.Printf("[prednode %s] decode task error: %v", nodeID, err)
		return
	}

	log.Printf("[prednode %s] tarea recibida: user=%d movie=%d shard=%d/%d candidatos=%d",
		nodeID, task.TargetUserID, task.MovieID, task.ShardID, task.Shards, len(task.MovieRatings))

	start := time.Now()

	partial, err := ComputePartial(context.Background(), &task, source)
	if err != nil {
		log.Printf("[prednode %s] compute error: %v", nodeID, err)
		return
	}

	log.Printf("[prednode %s] completado: user=%d movie=%d shard=%d/%d usados=%d tiempo=%s",
		nodeID, task.TargetUserID, task.MovieID, task.ShardID, task.Shards, partial.Used, time.Since(start))

	resp := PredictResponse{
		ShardID: task.ShardID,
		Partial: partial,
	}

	if err := json.NewEncoder(conn).Encode(&resp); err != nil {
		log.Printf("[prednode %s] encode resp error: %v", nodeID, err)
	}
}

// ComputePartial procesa el shard que le toca a este nodo: trae los ratings
// de cada candidato del shard y acumula el parcial num/den con el motor.
func ComputePartial(ctx context.Context, task *PredictTask, source RatingSource) (engine.Partial, error) {
	shard := make([]models.RatingDoc, 0, len(task.MovieRatings))
	neighbors := make(map[int][]models.RatingDoc)

	for idx, r := range task.MovieRatings {
		if task.Shards > 1 && idx%task.Shards != task.ShardID {
			continue
		}
		if _, ok := neighbors[r.UserID]; !ok {
			ratings, err := source.RatingsByUser(ctx, r.UserID)
			if err != nil {
				return engine.Partial{}, err
			}
			neighbors[r.UserID] = ratings
		}
		shard = append(shard, r)
	}

	return engine.Accumulate(task.TargetRatings, shard, neighbors), nil
}
