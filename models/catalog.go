package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Provider struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RUC     string             `bson:"ruc" json:"ruc" binding:"required"`
	Name    string             `bson:"name" json:"name" binding:"required"`
	Phone   string             `bson:"phone" json:"phone"`
	Email   string             `bson:"email" json:"email"`
	Address string             `bson:"address" json:"address"`
}

type UpdateProvider struct {
	RUC     string `json:"ruc,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// CatalogEntry is the shape shared by the flat lookup tables: worker types,
// payment types, delivery types and states.
type CatalogEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Description string             `bson:"description" json:"description" binding:"required"`
}

// Permission holds one document per worker type: a boolean per module name.
// The "programmer" worker type never consults these.
type Permission struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	WorkerType string             `bson:"workertype" json:"workertype" binding:"required"`
	Modules    map[string]bool    `bson:"modules" json:"modules"`
}
