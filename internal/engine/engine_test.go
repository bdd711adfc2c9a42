package engine

import (
	"math"
	"testing"

	"pelisrank/internal/models"
)

const tol = 1e-9

func ratings(userID int, scores map[int]int) []models.RatingDoc {
	out := make([]models.RatingDoc, 0, len(scores))
	for movieID, score := range scores {
		out = append(out, models.RatingDoc{UserID: userID, MovieID: movieID, Score: score})
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSimilarityPerfectCorrelation(t *testing.T) {
	// X: M1=5, M2=3. Y: M1=4, M2=2, M3=5.
	// Pares co-calificados (5,4) y (3,2): correlación perfecta.
	x := ratings(1, map[int]int{1: 5, 2: 3})
	y := ratings(2, map[int]int{1: 4, 2: 2, 3: 5})

	got := Similarity(x, y)
	if !almostEqual(got, 1.0) {
		t.Fatalf("Similarity = %v, esperaba 1.0", got)
	}
}

func TestSimilarityNegativeCorrelation(t *testing.T) {
	x := ratings(1, map[int]int{1: 5, 2: 1})
	y := ratings(2, map[int]int{1: 1, 2: 5})

	got := Similarity(x, y)
	if !almostEqual(got, -1.0) {
		t.Fatalf("Similarity = %v, esperaba -1.0", got)
	}
}

func TestSimilarityNoOverlap(t *testing.T) {
	x := ratings(1, map[int]int{1: 5, 2: 3})
	y := ratings(2, map[int]int{3: 4, 4: 2})

	if got := Similarity(x, y); got != 0.0 {
		t.Fatalf("sin películas en común: Similarity = %v, esperaba 0.0", got)
	}
}

func TestSimilarityEmptySets(t *testing.T) {
	x := ratings(1, map[int]int{1: 5})
	if got := Similarity(x, nil); got != 0.0 {
		t.Fatalf("Similarity(x, nil) = %v, esperaba 0.0", got)
	}
	if got := Similarity(nil, x); got != 0.0 {
		t.Fatalf("Similarity(nil, x) = %v, esperaba 0.0", got)
	}
	if got := Similarity(nil, nil); got != 0.0 {
		t.Fatalf("Similarity(nil, nil) = %v, esperaba 0.0", got)
	}
}

// Comparar un set de ratings consigo mismo da varianza cero en cada par
// (s, s), así que por la regla de varianza cero el resultado es 0.0, no 1.0.
// Es contraintuitivo pero es el comportamiento definido del algoritmo.
func TestSimilaritySelfIsZero(t *testing.T) {
	x := ratings(1, map[int]int{1: 5, 2: 3, 3: 4})
	if got := Similarity(x, x); got != 0.0 {
		t.Fatalf("Similarity(x, x) = %v, esperaba 0.0 por varianza cero", got)
	}
}

func TestSimilarityZeroVariance(t *testing.T) {
	// Y le puso 3 a todo: varianza cero del lado de Y, correlación indefinida.
	x := ratings(1, map[int]int{1: 5, 2: 1, 3: 4})
	y := ratings(2, map[int]int{1: 3, 2: 3, 3: 3})

	if got := Similarity(x, y); got != 0.0 {
		t.Fatalf("varianza cero: Similarity = %v, esperaba 0.0", got)
	}
	if got := Similarity(y, x); got != 0.0 {
		t.Fatalf("varianza cero (simétrico): Similarity = %v, esperaba 0.0", got)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b []models.RatingDoc
	}{
		{"correlacion parcial", ratings(1, map[int]int{1: 5, 2: 3, 3: 1, 4: 4}), ratings(2, map[int]int{1: 4, 2: 5, 3: 2, 5: 3})},
		{"anticorrelacion", ratings(1, map[int]int{1: 5, 2: 1}), ratings(2, map[int]int{1: 2, 2: 4})},
		{"un solo par", ratings(1, map[int]int{1: 5}), ratings(2, map[int]int{1: 3})},
		{"sin overlap", ratings(1, map[int]int{1: 5}), ratings(2, map[int]int{2: 3})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab := Similarity(tc.a, tc.b)
			ba := Similarity(tc.b, tc.a)
			if !almostEqual(ab, ba) {
				t.Fatalf("Similarity no simétrica: %v vs %v", ab, ba)
			}
		})
	}
}

func TestSimilarityBounded(t *testing.T) {
	cases := [][2][]models.RatingDoc{
		{ratings(1, map[int]int{1: 5, 2: 3, 3: 2}), ratings(2, map[int]int{1: 1, 2: 5, 3: 3})},
		{ratings(1, map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}), ratings(2, map[int]int{1: 2, 2: 2, 3: 3, 4: 5, 5: 4})},
		{ratings(1, map[int]int{1: 4, 2: 4, 3: 1}), ratings(2, map[int]int{1: 5, 2: 1, 3: 5})},
	}

	for _, c := range cases {
		got := Similarity(c[0], c[1])
		if got < -1.0-tol || got > 1.0+tol {
			t.Fatalf("Similarity fuera de rango [-1,1]: %v", got)
		}
	}
}

func TestPredictWeightedAverage(t *testing.T) {
	// El target comparte gustos perfectos con el usuario 2 (sim 1.0) y
	// opuestos con el usuario 3 (sim -1.0, se filtra). La predicción para
	// la película 10 es el score del usuario 2.
	target := ratings(1, map[int]int{1: 5, 2: 3})
	neighbors := map[int][]models.RatingDoc{
		2: ratings(2, map[int]int{1: 4, 2: 2, 10: 5}),
		3: ratings(3, map[int]int{1: 1, 2: 5, 10: 1}),
	}
	movieRatings := []models.RatingDoc{
		{UserID: 2, MovieID: 10, Score: 5},
		{UserID: 3, MovieID: 10, Score: 1},
	}

	got, ok := Predict(target, movieRatings, neighbors)
	if !ok {
		t.Fatal("esperaba predicción, llegó sin predicción")
	}
	if !almostEqual(got, 5.0) {
		t.Fatalf("Predict = %v, esperaba 5.0", got)
	}
}

func TestPredictNoPositiveNeighbors(t *testing.T) {
	// Todos los candidatos terminan con sim <= 0: no hay predicción.
	target := ratings(1, map[int]int{1: 5, 2: 1})
	neighbors := map[int][]models.RatingDoc{
		2: ratings(2, map[int]int{1: 1, 2: 5, 10: 4}), // sim -1.0
		3: ratings(3, map[int]int{5: 3, 10: 2}),       // sin overlap, sim 0.0
	}
	movieRatings := []models.RatingDoc{
		{UserID: 2, MovieID: 10, Score: 4},
		{UserID: 3, MovieID: 10, Score: 2},
	}

	if got, ok := Predict(target, movieRatings, neighbors); ok {
		t.Fatalf("esperaba sin predicción, llegó %v", got)
	}
}

func TestPredictNoCandidates(t *testing.T) {
	target := ratings(1, map[int]int{1: 5})
	if _, ok := Predict(target, nil, nil); ok {
		t.Fatal("sin candidatos no puede haber predicción")
	}
}

func TestPredictBoundedByNeighborScores(t *testing.T) {
	// Un promedio ponderado queda acotado por los scores que lo componen.
	target := ratings(1, map[int]int{1: 5, 2: 3, 3: 1})
	neighbors := map[int][]models.RatingDoc{
		2: ratings(2, map[int]int{1: 5, 2: 2, 3: 1, 10: 4}),
		3: ratings(3, map[int]int{1: 4, 2: 3, 3: 2, 10: 2}),
		4: ratings(4, map[int]int{1: 3, 2: 2, 3: 1, 10: 5}),
	}
	movieRatings := []models.RatingDoc{
		{UserID: 2, MovieID: 10, Score: 4},
		{UserID: 3, MovieID: 10, Score: 2},
		{UserID: 4, MovieID: 10, Score: 5},
	}

	got, ok := Predict(target, movieRatings, neighbors)
	if !ok {
		t.Fatal("esperaba predicción")
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range movieRatings {
		if sim := Similarity(target, neighbors[r.UserID]); sim <= 0 {
			continue
		}
		if s := float64(r.Score); s < min {
			min = s
		}
		if s := float64(r.Score); s > max {
			max = s
		}
	}
	if got < min-tol || got > max+tol {
		t.Fatalf("Predict = %v fuera del rango de vecinos [%v, %v]", got, min, max)
	}
}

func TestPredictZeroScorePrediction(t *testing.T) {
	// Un 0.0 legítimo no debe confundirse con "sin predicción": scores en 0
	// con un vecino de similitud positiva dan (0.0, true).
	target := ratings(1, map[int]int{1: 5, 2: 3})
	neighbors := map[int][]models.RatingDoc{
		2: ratings(2, map[int]int{1: 4, 2: 2, 10: 0}),
	}
	movieRatings := []models.RatingDoc{{UserID: 2, MovieID: 10, Score: 0}}

	got, ok := Predict(target, movieRatings, neighbors)
	if !ok {
		t.Fatal("esperaba predicción con valor 0.0, llegó sin predicción")
	}
	if got != 0.0 {
		t.Fatalf("Predict = %v, esperaba 0.0", got)
	}
}

// Los parciales de shards disjuntos combinados tienen que dar exactamente
// el mismo resultado que el cálculo local completo.
func TestPartialShardCombine(t *testing.T) {
	target := ratings(1, map[int]int{1: 5, 2: 3, 3: 4, 4: 2})
	neighbors := map[int][]models.RatingDoc{
		2: ratings(2, map[int]int{1: 4, 2: 2, 3: 5, 10: 5}),
		3: ratings(3, map[int]int{1: 5, 2: 4, 4: 1, 10: 3}),
		4: ratings(4, map[int]int{2: 1, 3: 2, 4: 5, 10: 4}),
		5: ratings(5, map[int]int{1: 1, 2: 5, 10: 1}),
	}
	movieRatings := []models.RatingDoc{
		{UserID: 2, MovieID: 10, Score: 5},
		{UserID: 3, MovieID: 10, Score: 3},
		{UserID: 4, MovieID: 10, Score: 4},
		{UserID: 5, MovieID: 10, Score: 1},
	}

	want, wantOK := Predict(target, movieRatings, neighbors)

	const shards = 3
	var combined Partial
	for shardID := 0; shardID < shards; shardID++ {
		var shard []models.RatingDoc
		for idx, r := range movieRatings {
			if idx%shards == shardID {
				shard = append(shard, r)
			}
		}
		combined = combined.Add(Accumulate(target, shard, neighbors))
	}

	got, ok := combined.Score()
	if ok != wantOK {
		t.Fatalf("ok combinado = %v, local = %v", ok, wantOK)
	}
	if !almostEqual(got, want) {
		t.Fatalf("score combinado = %v, local = %v", got, want)
	}
}

func TestPartialScoreEmpty(t *testing.T) {
	var p Partial
	if _, ok := p.Score(); ok {
		t.Fatal("un Partial vacío no puede producir predicción")
	}
}
