package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles del request
const (
	MovieRequestStatusPending  = "pending"
	MovieRequestStatusApproved = "approved"
	MovieRequestStatusRejected = "rejected"
)

// Documento para la colección movie_requests: películas propuestas por
// usuarios que un admin aprueba o rechaza.
type MovieRequest struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          int                `json:"userId" bson:"userId"`
	Status          string             `json:"status" bson:"status"` // pending|approved|rejected
	Movie           MovieCreateRequest `json:"movie" bson:"movie"`
	ApprovedMovieID *int               `json:"approvedMovieId,omitempty" bson:"approvedMovieId,omitempty"`
	Reason          string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Body para rechazar un request de película.
type RejectMovieRequest struct {
	Reason string `json:"reason"`
}
