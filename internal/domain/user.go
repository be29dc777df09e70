package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account that owns exercise entries.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"` // Unique across all users
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
