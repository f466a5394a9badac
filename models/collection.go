package models

import (
	"time"
)

// CollectionEntry is one movie saved in a user's favorites or watchlist.
// Title and poster are snapshotted from the catalog at insertion time and
// are not kept in sync with it.
type CollectionEntry struct {
	MovieID    int       `bson:"movie_id" json:"movieId"`
	Title      string    `bson:"title" json:"title"`
	PosterPath string    `bson:"poster_path" json:"posterPath,omitempty"`
	AddedAt    time.Time `bson:"added_at" json:"addedAt"`
}

// Review is a user's rating of a movie, at most one per movie per user.
// CreatedAt is reset whenever the review is re-submitted.
type Review struct {
	MovieID   int       `bson:"movie_id" json:"movieId"`
	Rating    int       `bson:"rating" json:"rating"`
	Text      string    `bson:"text" json:"text,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
