package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code            string             `bson:"code" json:"code" binding:"required"`
	Name            string             `bson:"name" json:"name" binding:"required"`
	Quantity        float64            `bson:"quantity" json:"quantity"` // current stock, mutated by order lines
	UnitPrice       float64            `bson:"unit_price" json:"unit_price"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ReorderLevel    float64            `bson:"reorder_level,omitempty" json:"reorder_level,omitempty"`
	PhotoURL        string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	PhotoPreviewURL string             `bson:"photo_preview_url,omitempty" json:"photo_preview_url,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type UpdateProduct struct {
	Code         string   `json:"code,omitempty"`
	Name         string   `json:"name,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	ReorderLevel *float64 `json:"reorder_level,omitempty"`
}
