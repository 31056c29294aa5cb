package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored on a user document. A plain user has no role field.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
