package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee carries the historical field drift of the employees collection: the
// 8-digit document number has been stored under "dni", "documento" and
// "identification" over time. New writes always use "dni"; lookups must match
// all three.
type Employee struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DNI             string             `bson:"dni" json:"dni" binding:"required"`
	FirstName       string             `bson:"first_name" json:"first_name" binding:"required"`
	LastName        string             `bson:"last_name" json:"last_name" binding:"required"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	WorkerTypeID    string             `bson:"workertype_id" json:"workertype_id" binding:"required"`
	HireDate        string             `bson:"hire_date" json:"hire_date"`
	TerminationDate string             `bson:"termination_date,omitempty" json:"termination_date,omitempty"`
	Workplace       string             `bson:"workplace" json:"workplace"`
	Status          string             `bson:"status" json:"status"` // "active" or "inactive"
	Password        string             `bson:"password,omitempty" json:"password,omitempty"`
}

type UpdateEmployee struct {
	DNI             string `json:"dni,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	WorkerTypeID    string `json:"workertype_id,omitempty"`
	HireDate        string `json:"hire_date,omitempty"`
	TerminationDate string `json:"termination_date,omitempty"`
	Workplace       string `json:"workplace,omitempty"`
	Status          string `json:"status,omitempty"`
	Password        string `json:"password,omitempty"`
}

type LoginInput struct {
	DNI      string `json:"dni" binding:"required"`
	Password string `json:"password" binding:"required"`
}
