package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	// Account information
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	// Per-user movie collections, embedded in the user document.
	// Favorites and watchlist keep insertion order; the frontend renders
	// them in that order.
	Favorites []CollectionEntry `bson:"favorites" json:"favorites"`
	Watchlist []CollectionEntry `bson:"watchlist" json:"watchlist"`
	Reviews   []Review          `bson:"reviews" json:"reviews"`
}
