package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Identification string             `bson:"identification" json:"identification" binding:"required"` // DNI or RUC
	Name           string             `bson:"name" json:"name" binding:"required"`
	Type           string             `bson:"type" json:"type" binding:"required"` // "person" or "company"
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email" json:"email"`
	StateID        string             `bson:"state_id" json:"state_id"`
	Location       string             `bson:"location" json:"location"`
	CreatedAt      time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type UpdateClient struct {
	Identification string `json:"identification,omitempty"`
	Name           string `json:"name,omitempty"`
	Type           string `json:"type,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	StateID        string `json:"state_id,omitempty"`
	Location       string `json:"location,omitempty"`
}
