package services

import (
	"testing"

	"movie-discovery-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestAddFavorite(t *testing.T) {
	svc := NewCollectionsService()

	t.Run("appends entries in insertion order", func(t *testing.T) {
		user := &models.User{}

		favorites, err := svc.AddFavorite(user, 42, "Dune", "/x.jpg")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, 42, favorites[0].MovieID)
		assert.Equal(t, "Dune", favorites[0].Title)
		assert.Equal(t, "/x.jpg", favorites[0].PosterPath)
		assert.False(t, favorites[0].AddedAt.IsZero())

		favorites, err = svc.AddFavorite(user, 7, "Alien", "")
		require.NoError(t, err)
		require.Len(t, favorites, 2)
		assert.Equal(t, 42, favorites[0].MovieID)
		assert.Equal(t, 7, favorites[1].MovieID)
	})

	t.Run("rejects duplicate movie without mutation", func(t *testing.T) {
		user := &models.User{}

		_, err := svc.AddFavorite(user, 42, "Dune", "/x.jpg")
		require.NoError(t, err)

		_, err = svc.AddFavorite(user, 42, "Dune again", "/y.jpg")
		assert.ErrorIs(t, err, ErrDuplicate)
		require.Len(t, user.Favorites, 1)
		assert.Equal(t, "Dune", user.Favorites[0].Title)
	})

	t.Run("rejects missing movie id or title", func(t *testing.T) {
		user := &models.User{}

		_, err := svc.AddFavorite(user, 0, "Dune", "")
		assert.ErrorIs(t, err, ErrMissingField)

		_, err = svc.AddFavorite(user, 42, "", "")
		assert.ErrorIs(t, err, ErrMissingField)

		assert.Empty(t, user.Favorites)
	})
}

func TestRemoveFavorite(t *testing.T) {
	svc := NewCollectionsService()

	t.Run("removes matching entry", func(t *testing.T) {
		user := &models.User{}
		_, err := svc.AddFavorite(user, 42, "Dune", "/x.jpg")
		require.NoError(t, err)

		favorites := svc.RemoveFavorite(user, 42)
		assert.Empty(t, favorites)
	})

	t.Run("is a no-op for an absent movie", func(t *testing.T) {
		user := &models.User{}
		_, err := svc.AddFavorite(user, 1, "First", "")
		require.NoError(t, err)
		_, err = svc.AddFavorite(user, 2, "Second", "")
		require.NoError(t, err)

		favorites := svc.RemoveFavorite(user, 99)
		require.Len(t, favorites, 2)
		assert.Equal(t, 1, favorites[0].MovieID)
		assert.Equal(t, 2, favorites[1].MovieID)
	})
}

func TestFavoritesAndWatchlistAreIndependent(t *testing.T) {
	svc := NewCollectionsService()
	user := &models.User{}

	_, err := svc.AddFavorite(user, 42, "Dune", "/x.jpg")
	require.NoError(t, err)

	assert.Empty(t, svc.ListWatchlist(user))

	// The same movie can be added to the watchlist too
	watchlist, err := svc.AddToWatchlist(user, 42, "Dune", "/x.jpg")
	require.NoError(t, err)
	assert.Len(t, watchlist, 1)

	svc.RemoveFromWatchlist(user, 42)
	assert.Len(t, svc.ListFavorites(user), 1)
}

func TestAddToWatchlist(t *testing.T) {
	svc := NewCollectionsService()
	user := &models.User{}

	_, err := svc.AddToWatchlist(user, 5, "Heat", "/h.jpg")
	require.NoError(t, err)

	_, err = svc.AddToWatchlist(user, 5, "Heat", "/h.jpg")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, user.Watchlist, 1)
}

func TestUpsertReview(t *testing.T) {
	svc := NewCollectionsService()

	t.Run("inserts then updates in place", func(t *testing.T) {
		user := &models.User{}

		outcome, reviews, err := svc.UpsertReview(user, 7, floatPtr(8), "Great")
		require.NoError(t, err)
		assert.Equal(t, ReviewInserted, outcome)
		require.Len(t, reviews, 1)
		assert.Equal(t, 7, reviews[0].MovieID)
		assert.Equal(t, 8, reviews[0].Rating)
		assert.Equal(t, "Great", reviews[0].Text)
		firstCreated := reviews[0].CreatedAt

		outcome, reviews, err = svc.UpsertReview(user, 7, floatPtr(3), "Meh")
		require.NoError(t, err)
		assert.Equal(t, ReviewUpdated, outcome)
		require.Len(t, reviews, 1)
		assert.Equal(t, 3, reviews[0].Rating)
		assert.Equal(t, "Meh", reviews[0].Text)
		assert.False(t, reviews[0].CreatedAt.Before(firstCreated))
	})

	t.Run("keeps position when updating", func(t *testing.T) {
		user := &models.User{}
		_, _, err := svc.UpsertReview(user, 1, floatPtr(5), "")
		require.NoError(t, err)
		_, _, err = svc.UpsertReview(user, 2, floatPtr(6), "")
		require.NoError(t, err)

		_, reviews, err := svc.UpsertReview(user, 1, floatPtr(9), "better than I remembered")
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, 1, reviews[0].MovieID)
		assert.Equal(t, 9, reviews[0].Rating)
		assert.Equal(t, 2, reviews[1].MovieID)
	})

	t.Run("validates rating before mutating", func(t *testing.T) {
		cases := []struct {
			name   string
			rating *float64
			err    error
		}{
			{"zero", floatPtr(0), ErrInvalidRating},
			{"eleven", floatPtr(11), ErrInvalidRating},
			{"fractional", floatPtr(5.5), ErrInvalidRating},
			{"negative", floatPtr(-3), ErrInvalidRating},
			{"missing", nil, ErrMissingField},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				user := &models.User{}
				_, _, err := svc.UpsertReview(user, 7, floatPtr(8), "Great")
				require.NoError(t, err)

				_, _, err = svc.UpsertReview(user, 7, tc.rating, "x")
				assert.ErrorIs(t, err, tc.err)

				// Prior state untouched
				require.Len(t, user.Reviews, 1)
				assert.Equal(t, 8, user.Reviews[0].Rating)
				assert.Equal(t, "Great", user.Reviews[0].Text)
			})
		}
	})

	t.Run("accepts rating boundaries", func(t *testing.T) {
		user := &models.User{}
		_, _, err := svc.UpsertReview(user, 1, floatPtr(1), "")
		assert.NoError(t, err)
		_, _, err = svc.UpsertReview(user, 2, floatPtr(10), "")
		assert.NoError(t, err)
	})

	t.Run("rejects missing movie id", func(t *testing.T) {
		user := &models.User{}
		_, _, err := svc.UpsertReview(user, 0, floatPtr(8), "x")
		assert.ErrorIs(t, err, ErrMissingField)
	})
}

func TestDeleteReview(t *testing.T) {
	svc := NewCollectionsService()
	user := &models.User{}

	_, _, err := svc.UpsertReview(user, 7, floatPtr(8), "Great")
	require.NoError(t, err)

	reviews := svc.DeleteReview(user, 7)
	assert.Empty(t, reviews)

	// Absent id is a no-op
	reviews = svc.DeleteReview(user, 7)
	assert.Empty(t, reviews)
}

func TestUpdateProfile(t *testing.T) {
	svc := NewCollectionsService()

	t.Run("replaces only supplied fields", func(t *testing.T) {
		user := &models.User{Username: "old", Email: "old@example.com"}

		name := "newname"
		svc.UpdateProfile(user, &name, nil)
		assert.Equal(t, "newname", user.Username)
		assert.Equal(t, "old@example.com", user.Email)

		email := "new@example.com"
		svc.UpdateProfile(user, nil, &email)
		assert.Equal(t, "newname", user.Username)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("leaves collections untouched", func(t *testing.T) {
		user := &models.User{}
		_, err := svc.AddFavorite(user, 42, "Dune", "")
		require.NoError(t, err)

		name := "someone"
		svc.UpdateProfile(user, &name, nil)
		assert.Len(t, user.Favorites, 1)
	})
}

func TestFullFavoriteScenario(t *testing.T) {
	svc := NewCollectionsService()
	user := &models.User{}

	favorites, err := svc.AddFavorite(user, 42, "Dune", "/x.jpg")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, 42, favorites[0].MovieID)
	assert.Equal(t, "Dune", favorites[0].Title)
	assert.Equal(t, "/x.jpg", favorites[0].PosterPath)

	_, err = svc.AddFavorite(user, 42, "Dune", "/x.jpg")
	assert.ErrorIs(t, err, ErrDuplicate)

	favorites = svc.RemoveFavorite(user, 42)
	assert.Empty(t, favorites)
}
