package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order.Number is the business key assigned by the office, distinct from the
// document _id. Order lines reference the number, not the _id.
type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number             string             `bson:"number" json:"number" binding:"required"`
	ClientID           string             `bson:"client_id" json:"client_id" binding:"required"`
	SaleDate           string             `bson:"sale_date" json:"sale_date"`
	DeliveryDate       string             `bson:"delivery_date,omitempty" json:"delivery_date,omitempty"`
	Total              float64            `bson:"total" json:"total"` // derived from lines
	PaymentOption      string             `bson:"payment_option" json:"payment_option"` // "full" or "partial"
	PaymentTypeID      string             `bson:"paymenttype_id" json:"paymenttype_id"`
	PaymentType2ID     string             `bson:"paymenttype2_id,omitempty" json:"paymenttype2_id,omitempty"`
	DeliveryTypeID     string             `bson:"deliverytype_id" json:"deliverytype_id"`
	EmployeeID         string             `bson:"employee_id" json:"employee_id"`
	ServiceStatus      string             `bson:"service_status" json:"service_status"` // "pending" or "done"
	PartialPaymentDate string             `bson:"partial_payment_date,omitempty" json:"partial_payment_date,omitempty"`
	Balance            float64            `bson:"balance,omitempty" json:"balance,omitempty"`
	CreatedAt          time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt          time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type OrderLine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderNumber string             `bson:"order_number" json:"order_number"`
	ProductID   string             `bson:"product_id" json:"product_id" binding:"required"`
	Quantity    float64            `bson:"quantity" json:"quantity" binding:"required"`
	UnitPrice   float64            `bson:"unit_price" json:"unit_price"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

type UpdateOrder struct {
	ClientID           string   `json:"client_id,omitempty"`
	SaleDate           string   `json:"sale_date,omitempty"`
	DeliveryDate       string   `json:"delivery_date,omitempty"`
	PaymentOption      string   `json:"payment_option,omitempty"`
	PaymentTypeID      string   `json:"paymenttype_id,omitempty"`
	PaymentType2ID     string   `json:"paymenttype2_id,omitempty"`
	DeliveryTypeID     string   `json:"deliverytype_id,omitempty"`
	EmployeeID         string   `json:"employee_id,omitempty"`
	ServiceStatus      string   `json:"service_status,omitempty"`
	PartialPaymentDate string   `json:"partial_payment_date,omitempty"`
	Balance            *float64 `json:"balance,omitempty"`
}

type UpdateOrderLine struct {
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}
