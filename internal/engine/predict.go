package engine

import "pelisrank/internal/models"

// Partial acumula numerador y denominador del promedio ponderado. No
// devolvemos el score final por shard, sino num/den, para que el
// coordinador combine correctamente los parciales de varios nodos.
type Partial struct {
	Num  float64 `json:"num"`  // sum(sim * score)
	Den  float64 `json:"den"`  // sum(sim)
	Used int     `json:"used"` // candidatos con sim > 0
}

// Add suma otro parcial (shards disjuntos de candidatos).
func (p Partial) Add(q Partial) Partial {
	return Partial{Num: p.Num + q.Num, Den: p.Den + q.Den, Used: p.Used + q.Used}
}

// Score cierra el promedio ponderado. ok=false significa "sin predicción":
// ningún candidato con similitud positiva. Es distinto de un 0.0 legítimo.
func (p Partial) Score() (float64, bool) {
	if p.Den <= 0 {
		return 0, false
	}
	return p.Num / p.Den, true
}

// Accumulate recorre los ratings de la película objetivo y pondera el score
// de cada candidato por su similitud con el usuario objetivo. Los candidatos
// con sim <= 0 no aportan información y se descartan (una similitud negativa
// corrompería el signo del promedio). neighbors mapea userId -> ratings
// completos de ese usuario, ya leídos por el caller.
//
// No ordenamos candidatos: el orden no afecta al resultado, solo hay un
// filtro y una reducción después.
func Accumulate(target []models.RatingDoc, movieRatings []models.RatingDoc, neighbors map[int][]models.RatingDoc) Partial {
	var p Partial
	for _, r := range movieRatings {
		sim := Similarity(target, neighbors[r.UserID])
		if sim <= 0 {
			continue
		}
		p.Num += sim * float64(r.Score)
		p.Den += sim
		p.Used++
	}
	return p
}

// Predict estima el score que el usuario objetivo le daría a la película.
// target son los ratings del usuario, movieRatings los ratings que recibió
// la película (los candidatos) y neighbors los ratings completos de cada
// candidato. Devuelve el promedio sin redondear; redondear es cosa del
// caller. ok=false cuando no queda ningún vecino con similitud positiva.
func Predict(target []models.RatingDoc, movieRatings []models.RatingDoc, neighbors map[int][]models.RatingDoc) (float64, bool) {
	return Accumulate(target, movieRatings, neighbors).Score()
}
