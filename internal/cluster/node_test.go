package cluster

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"pelisrank/internal/engine"
	"pelisrank/internal/models"
)

// fuente en memoria para no depender de Mongo en los tests
type memSource map[int][]models.RatingDoc

func (m memSource) RatingsByUser(_ context.Context, userID int) ([]models.RatingDoc, error) {
	return m[userID], nil
}

func testDataset() (memSource, []models.RatingDoc, []models.RatingDoc) {
	source := memSource{
		1: {{UserID: 1, MovieID: 1, Score: 5}, {UserID: 1, MovieID: 2, Score: 3}, {UserID: 1, MovieID: 3, Score: 4}},
		2: {{UserID: 2, MovieID: 1, Score: 4}, {UserID: 2, MovieID: 2, Score: 2}, {UserID: 2, MovieID: 10, Score: 5}},
		3: {{UserID: 3, MovieID: 1, Score: 5}, {UserID: 3, MovieID: 3, Score: 5}, {UserID: 3, MovieID: 10, Score: 4}},
		4: {{UserID: 4, MovieID: 1, Score: 1}, {UserID: 4, MovieID: 2, Score: 5}, {UserID: 4, MovieID: 10, Score: 1}},
	}
	target := source[1]
	movieRatings := []models.RatingDoc{
		{UserID: 2, MovieID: 10, Score: 5},
		{UserID: 3, MovieID: 10, Score: 4},
		{UserID: 4, MovieID: 10, Score: 1},
	}
	return source, target, movieRatings
}

func TestComputePartialSingleShard(t *testing.T) {
	source, target, movieRatings := testDataset()

	task := &PredictTask{
		TargetUserID:  1,
		MovieID:       10,
		ShardID:       0,
		Shards:        1,
		TargetRatings: target,
		MovieRatings:  movieRatings,
	}

	partial, err := ComputePartial(context.Background(), task, source)
	if err != nil {
		t.Fatalf("ComputePartial: %v", err)
	}

	// referencia: cálculo local directo con el motor
	neighbors := map[int][]models.RatingDoc{2: source[2], 3: source[3], 4: source[4]}
	want := engine.Accumulate(target, movieRatings, neighbors)

	if math.Abs(partial.Num-want.Num) > 1e-9 || math.Abs(partial.Den-want.Den) > 1e-9 {
		t.Fatalf("partial = %+v, esperaba %+v", partial, want)
	}
	if partial.Used != want.Used {
		t.Fatalf("used = %d, esperaba %d", partial.Used, want.Used)
	}
}

func TestComputePartialShardsCombine(t *testing.T) {
	source, target, movieRatings := testDataset()

	neighbors := map[int][]models.RatingDoc{2: source[2], 3: source[3], 4: source[4]}
	want, wantOK := engine.Predict(target, movieRatings, neighbors)

	const shards = 2
	var combined engine.Partial
	for shardID := 0; shardID < shards; shardID++ {
		task := &PredictTask{
			TargetUserID:  1,
			MovieID:       10,
			ShardID:       shardID,
			Shards:        shards,
			TargetRatings: target,
			MovieRatings:  movieRatings,
		}
		partial, err := ComputePartial(context.Background(), task, source)
		if err != nil {
			t.Fatalf("ComputePartial shard %d: %v", shardID, err)
		}
		combined = combined.Add(partial)
	}

	got, ok := combined.Score()
	if ok != wantOK {
		t.Fatalf("ok combinado = %v, local = %v", ok, wantOK)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score combinado = %v, local = %v", got, want)
	}
}

// Round-trip completo por TCP: Serve en loopback + SendTask.
func TestServeRoundTrip(t *testing.T) {
	source, target, movieRatings := testDataset()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go Serve(ln, "test", source)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task := &PredictTask{
		TargetUserID:  1,
		MovieID:       10,
		ShardID:       0,
		Shards:        1,
		TargetRatings: target,
		MovieRatings:  movieRatings,
	}

	resp, err := SendTask(ctx, ln.Addr().String(), task)
	if err != nil {
		t.Fatalf("SendTask: %v", err)
	}
	if resp.ShardID != 0 {
		t.Fatalf("shardId = %d, esperaba 0", resp.ShardID)
	}

	neighbors := map[int][]models.RatingDoc{2: source[2], 3: source[3], 4: source[4]}
	want := engine.Accumulate(target, movieRatings, neighbors)
	if math.Abs(resp.Partial.Num-want.Num) > 1e-9 || math.Abs(resp.Partial.Den-want.Den) > 1e-9 {
		t.Fatalf("partial por TCP = %+v, esperaba %+v", resp.Partial, want)
	}
}
