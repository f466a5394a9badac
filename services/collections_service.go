package services

import (
	"errors"
	"math"
	"time"

	"movie-discovery-backend/models"
)

// Collection mutation failures. The controllers map these onto the
// 400-level response messages; everything else surfaces as a 500.
var (
	ErrDuplicate     = errors.New("movie already in collection")
	ErrMissingField  = errors.New("required field missing")
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 10")
)

// ReviewOutcome tells the caller whether an upsert inserted a new review
// or replaced an existing one.
type ReviewOutcome int

const (
	ReviewInserted ReviewOutcome = iota
	ReviewUpdated
)

// CollectionsService owns all mutation and query logic over a single
// user's favorites, watchlist, and reviews. It is stateless and performs
// no I/O: the caller loads the user record, applies exactly one operation,
// and persists the result. Validation always happens before any mutation,
// so a rejected call leaves the user untouched.
type CollectionsService struct{}

func NewCollectionsService() *CollectionsService {
	return &CollectionsService{}
}

// AddFavorite appends a movie to the user's favorites. Adding a movie
// already present rejects with ErrDuplicate and changes nothing.
func (s *CollectionsService) AddFavorite(user *models.User, movieID int, title, posterPath string) ([]models.CollectionEntry, error) {
	entries, err := addEntry(user.Favorites, movieID, title, posterPath)
	if err != nil {
		return nil, err
	}
	user.Favorites = entries
	return user.Favorites, nil
}

// RemoveFavorite removes the matching movie from favorites. Removing an
// absent movie is a no-op, not an error.
func (s *CollectionsService) RemoveFavorite(user *models.User, movieID int) []models.CollectionEntry {
	user.Favorites = removeEntry(user.Favorites, movieID)
	return user.Favorites
}

func (s *CollectionsService) ListFavorites(user *models.User) []models.CollectionEntry {
	return user.Favorites
}

// AddToWatchlist mirrors AddFavorite on the watchlist. The two collections
// are independent: the same movie may sit in both.
func (s *CollectionsService) AddToWatchlist(user *models.User, movieID int, title, posterPath string) ([]models.CollectionEntry, error) {
	entries, err := addEntry(user.Watchlist, movieID, title, posterPath)
	if err != nil {
		return nil, err
	}
	user.Watchlist = entries
	return user.Watchlist, nil
}

func (s *CollectionsService) RemoveFromWatchlist(user *models.User, movieID int) []models.CollectionEntry {
	user.Watchlist = removeEntry(user.Watchlist, movieID)
	return user.Watchlist
}

func (s *CollectionsService) ListWatchlist(user *models.User) []models.CollectionEntry {
	return user.Watchlist
}

// UpsertReview inserts or replaces the user's review for a movie. A
// replacement rewrites rating, text, and CreatedAt in place, keeping the
// review's position; there is never more than one review per movie.
func (s *CollectionsService) UpsertReview(user *models.User, movieID int, rating *float64, text string) (ReviewOutcome, []models.Review, error) {
	if movieID == 0 {
		return 0, nil, ErrMissingField
	}
	if rating == nil {
		return 0, nil, ErrMissingField
	}
	r := *rating
	if r != math.Trunc(r) || r < 1 || r > 10 {
		return 0, nil, ErrInvalidRating
	}

	review := models.Review{
		MovieID:   movieID,
		Rating:    int(r),
		Text:      text,
		CreatedAt: time.Now(),
	}

	for i := range user.Reviews {
		if user.Reviews[i].MovieID == movieID {
			user.Reviews[i] = review
			return ReviewUpdated, user.Reviews, nil
		}
	}

	user.Reviews = append(user.Reviews, review)
	return ReviewInserted, user.Reviews, nil
}

// DeleteReview removes the user's review for a movie, if any.
func (s *CollectionsService) DeleteReview(user *models.User, movieID int) []models.Review {
	kept := user.Reviews[:0:0]
	for _, rev := range user.Reviews {
		if rev.MovieID != movieID {
			kept = append(kept, rev)
		}
	}
	user.Reviews = kept
	return user.Reviews
}

func (s *CollectionsService) ListReviews(user *models.User) []models.Review {
	return user.Reviews
}

// UpdateProfile replaces only the supplied fields, leaving collections
// untouched. Uniqueness across users is the store's concern.
func (s *CollectionsService) UpdateProfile(user *models.User, username, email *string) {
	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
}

func addEntry(entries []models.CollectionEntry, movieID int, title, posterPath string) ([]models.CollectionEntry, error) {
	if movieID == 0 || title == "" {
		return nil, ErrMissingField
	}
	for _, e := range entries {
		if e.MovieID == movieID {
			return nil, ErrDuplicate
		}
	}
	return append(entries, models.CollectionEntry{
		MovieID:    movieID,
		Title:      title,
		PosterPath: posterPath,
		AddedAt:    time.Now(),
	}), nil
}

func removeEntry(entries []models.CollectionEntry, movieID int) []models.CollectionEntry {
	kept := entries[:0:0]
	for _, e := range entries {
		if e.MovieID != movieID {
			kept = append(kept, e)
		}
	}
	return kept
}
