// Package engine implementa el núcleo del recomendador: similitud de
// Pearson entre usuarios y predicción de score como promedio ponderado.
// Todo es puro: los ratings llegan ya leídos de Mongo, aquí no hay I/O.
package engine

import (
	"math"

	"pelisrank/internal/models"
)

// Similarity compara los ratings de dos usuarios y devuelve la correlación
// de Pearson sobre las películas que ambos calificaron, en [-1, 1].
//
// Devuelve 0.0 cuando no hay películas en común y también cuando alguno de
// los dos dio el mismo score a todas las películas compartidas (varianza
// cero, la correlación no está definida). Ojo: eso incluye comparar un set
// de ratings consigo mismo.
func Similarity(a, b []models.RatingDoc) float64 {
	scores := make(map[int]int, len(a))
	for _, r := range a {
		scores[r.MovieID] = r.Score
	}

	// sumas acumuladas sobre los pares co-calificados
	var n, sumA, sumB, sumAB, sumA2, sumB2 float64
	for _, rb := range b {
		sa, ok := scores[rb.MovieID]
		if !ok {
			continue
		}
		fa, fb := float64(sa), float64(rb.Score)
		n++
		sumA += fa
		sumB += fb
		sumAB += fa * fb
		sumA2 += fa * fa
		sumB2 += fb * fb
	}

	if n == 0 {
		return 0.0
	}

	varA := sumA2 - sumA*sumA/n
	varB := sumB2 - sumB*sumB/n
	// varianza cero (o negativa por redondeo flotante): sin señal
	if varA <= 0 || varB <= 0 {
		return 0.0
	}

	return (sumAB - sumA*sumB/n) / math.Sqrt(varA*varB)
}
