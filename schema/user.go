package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "users"

// UserRole distinguishes service providers from service requesters.
type UserRole string

const (
	RoleHelper UserRole = "helper"
	RoleNeeder UserRole = "needer"
)

// User is the authentication identity. Extended attributes live in Profile.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      UserRole           `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserView is the minimal user representation returned from auth endpoints.
type UserView struct {
	ID        primitive.ObjectID  `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email,omitempty"`
	Role      UserRole            `json:"role"`
	ProfileID *primitive.ObjectID `json:"profileId,omitempty"`
}
