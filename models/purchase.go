package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Purchase struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number         string             `bson:"number" json:"number" binding:"required"`
	ProviderID     string             `bson:"provider_id" json:"provider_id" binding:"required"`
	PurchaseDate   string             `bson:"purchase_date" json:"purchase_date"`
	ReceptionDate  string             `bson:"reception_date,omitempty" json:"reception_date,omitempty"`
	Subtotal       float64            `bson:"subtotal" json:"subtotal"` // derived from lines
	Freight        float64            `bson:"freight" json:"freight"`
	Customs        float64            `bson:"customs" json:"customs"`
	TotalFinal     float64            `bson:"total_final" json:"total_final"` // subtotal + freight + customs
	PaymentTypeID  string             `bson:"paymenttype_id" json:"paymenttype_id"`
	PaymentType2ID string             `bson:"paymenttype2_id,omitempty" json:"paymenttype2_id,omitempty"`
	ServiceStatus  string             `bson:"service_status" json:"service_status"` // "done" closes the purchase to line edits
	Balance        float64            `bson:"balance,omitempty" json:"balance,omitempty"`
	CreatedAt      time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type PurchaseLine struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PurchaseNumber string             `bson:"purchase_number" json:"purchase_number"`
	ProductID      string             `bson:"product_id" json:"product_id" binding:"required"`
	Quantity       float64            `bson:"quantity" json:"quantity" binding:"required"`
	UnitPrice      float64            `bson:"unit_price" json:"unit_price"`
	LineTotal      float64            `bson:"line_total" json:"line_total"` // quantity * unit_price, stored
}

type UpdatePurchase struct {
	ProviderID     string   `json:"provider_id,omitempty"`
	PurchaseDate   string   `json:"purchase_date,omitempty"`
	ReceptionDate  string   `json:"reception_date,omitempty"`
	Freight        *float64 `json:"freight,omitempty"`
	Customs        *float64 `json:"customs,omitempty"`
	PaymentTypeID  string   `json:"paymenttype_id,omitempty"`
	PaymentType2ID string   `json:"paymenttype2_id,omitempty"`
	ServiceStatus  string   `json:"service_status,omitempty"`
	Balance        *float64 `json:"balance,omitempty"`
}

type UpdatePurchaseLine struct {
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}
