package models

// AddEntryRequest is the body for adding a movie to favorites or the
// watchlist. MovieID and Title presence are checked by the collections
// service so the missing-field response matches for both.
type AddEntryRequest struct {
	MovieID    int    `json:"movieId"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath"`
}

// UpsertReviewRequest carries a pointer rating so an absent rating can be
// told apart from zero, and a non-integer one rejected.
type UpsertReviewRequest struct {
	MovieID int      `json:"movieId"`
	Rating  *float64 `json:"rating"`
	Text    string   `json:"text"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// ProfileData is the trimmed user payload returned by profile updates.
type ProfileData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
