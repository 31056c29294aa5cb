package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code        string             `bson:"code" json:"code"`
	Discount    float64            `bson:"discount" json:"discount"`
	Description string             `bson:"description" json:"description"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
}
