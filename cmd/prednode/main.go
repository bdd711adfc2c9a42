package main

import (
	"log"
	"net"
	"os"

	"pelisrank/internal/cluster"
	"pelisrank/internal/config"
	"pelisrank/internal/db"
	"pelisrank/internal/repository"
)

// Nodo de predicción: recibe tareas por TCP, calcula su parcial de la suma
// ponderada sobre el shard de candidatos que le toca y devuelve num/den.
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)
	ratingRepo := repository.NewRatingRepository()

	addr := os.Getenv("PRED_NODE_ADDR")
	if addr == "" {
		addr = ":9001"
	}
	nodeID := os.Getenv("NODE_ID")
	if nodeID == "" {
		nodeID = "node-1"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("[prednode %s] no se pudo escuchar en %s: %v", nodeID, addr, err)
	}
	log.Printf("[prednode %s] escuchando en %s", nodeID, addr)

	cluster.Serve(ln, nodeID, ratingRepo)
}
