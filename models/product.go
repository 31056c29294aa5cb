package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
)

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Price     float64            `bson:"price" json:"price"`
	Recipe    string             `bson:"recipe" json:"recipe"`
	Image     string             `bson:"image" json:"image"`
	Status    ProductStatus      `bson:"status" json:"status"`
	Featured  bool               `bson:"featured" json:"featured"`
	Email     string             `bson:"email" json:"email"` // owner who listed it
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
