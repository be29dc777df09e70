package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single recorded exercise entry belonging to one user.
// Entries are immutable after creation; there is no update or delete path.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Owning user's ID
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // Minutes
	Date        time.Time          `bson:"date" json:"date"`         // Stored at date-only precision (midnight UTC)
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
