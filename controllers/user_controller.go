package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"movie-discovery-backend/data_access"
	"movie-discovery-backend/helper"
	"movie-discovery-backend/metrics"
	"movie-discovery-backend/models"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserController maps the collection routes onto the collections service.
// Every handler follows the same cycle: load the user record, apply one
// operation, save the touched collection back.
type UserController struct {
	userStore   data_access.UserStore
	collections *services.CollectionsService
}

func NewUserController(userStore data_access.UserStore, collections *services.CollectionsService) *UserController {
	return &UserController{
		userStore:   userStore,
		collections: collections,
	}
}

// Favorites

func (c *UserController) GetFavorites(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	favorites := c.collections.ListFavorites(user)
	helper.List(ctx, len(favorites), favorites)
}

func (c *UserController) AddFavorite(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req models.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		helper.Fail(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	favorites, err := c.collections.AddFavorite(user, req.MovieID, req.Title, req.PosterPath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			helper.Fail(ctx, http.StatusBadRequest, "Movie ID and title are required")
		case errors.Is(err, services.ErrDuplicate):
			helper.Fail(ctx, http.StatusBadRequest, "Movie already in favorites")
		default:
			helper.Fail(ctx, http.StatusInternalServerError, "Failed to add favorite")
		}
		return
	}

	if err := c.userStore.SaveFavorites(ctx.Request.Context(), user.ID, favorites); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	metrics.CollectionMutationsTotal.WithLabelValues("favorites", "add").Inc()
	helper.OK(ctx, http.StatusCreated, "Movie added to favorites", favorites)
}

func (c *UserController) RemoveFavorite(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	movieID, ok := moviePathParam(ctx)
	if !ok {
		return
	}

	favorites := c.collections.RemoveFavorite(user, movieID)
	if err := c.userStore.SaveFavorites(ctx.Request.Context(), user.ID, favorites); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	metrics.CollectionMutationsTotal.WithLabelValues("favorites", "remove").Inc()
	helper.OK(ctx, http.StatusOK, "Movie removed from favorites", favorites)
}

// Watchlist

func (c *UserController) GetWatchlist(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	watchlist := c.collections.ListWatchlist(user)
	helper.List(ctx, len(watchlist), watchlist)
}

func (c *UserController) AddToWatchlist(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req models.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		helper.Fail(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	watchlist, err := c.collections.AddToWatchlist(user, req.MovieID, req.Title, req.PosterPath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			helper.Fail(ctx, http.StatusBadRequest, "Movie ID and title are required")
		case errors.Is(err, services.ErrDuplicate):
			helper.Fail(ctx, http.StatusBadRequest, "Movie already in watchlist")
		default:
			helper.Fail(ctx, http.StatusInternalServerError, "Failed to add to watchlist")
		}
		return
	}

	if err := c.userStore.SaveWatchlist(ctx.Request.Context(), user.ID, watchlist); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save watchlist")
		return
	}

	metrics.CollectionMutationsTotal.WithLabelValues("watchlist", "add").Inc()
	helper.OK(ctx, http.StatusCreated, "Movie added to watchlist", watchlist)
}

func (c *UserController) RemoveFromWatchlist(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	movieID, ok := moviePathParam(ctx)
	if !ok {
		return
	}

	watchlist := c.collections.RemoveFromWatchlist(user, movieID)
	if err := c.userStore.SaveWatchlist(ctx.Request.Context(), user.ID, watchlist); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save watchlist")
		return
	}

	metrics.CollectionMutationsTotal.WithLabelValues("watchlist", "remove").Inc()
	helper.OK(ctx, http.StatusOK, "Movie removed from watchlist", watchlist)
}

// Reviews

func (c *UserController) GetReviews(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	reviews := c.collections.ListReviews(user)
	helper.List(ctx, len(reviews), reviews)
}

func (c *UserController) UpsertReview(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req models.UpsertReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		helper.Fail(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, reviews, err := c.collections.UpsertReview(user, req.MovieID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			helper.Fail(ctx, http.StatusBadRequest, "Movie ID and rating are required")
		case errors.Is(err, services.ErrInvalidRating):
			helper.Fail(ctx, http.StatusBadRequest, "Rating must be between 1 and 10")
		default:
			helper.Fail(ctx, http.StatusInternalServerError, "Failed to save review")
		}
		return
	}

	if err := c.userStore.SaveReviews(ctx.Request.Context(), user.ID, reviews); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save reviews")
		return
	}

	message := "Review added"
	if outcome == services.ReviewUpdated {
		message = "Review updated"
	}
	metrics.CollectionMutationsTotal.WithLabelValues("reviews", "upsert").Inc()
	helper.OK(ctx, http.StatusCreated, message, reviews)
}

func (c *UserController) DeleteReview(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	movieID, ok := moviePathParam(ctx)
	if !ok {
		return
	}

	reviews := c.collections.DeleteReview(user, movieID)
	if err := c.userStore.SaveReviews(ctx.Request.Context(), user.ID, reviews); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to save reviews")
		return
	}

	metrics.CollectionMutationsTotal.WithLabelValues("reviews", "delete").Inc()
	helper.OK(ctx, http.StatusOK, "Review deleted", reviews)
}

// Profile

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if _, isValidation := err.(validator.ValidationErrors); isValidation {
			helper.Fail(ctx, http.StatusBadRequest, "Invalid profile fields")
		} else {
			helper.Fail(ctx, http.StatusBadRequest, "Invalid request format")
		}
		return
	}

	c.collections.UpdateProfile(user, req.Username, req.Email)

	if err := c.userStore.SaveProfile(ctx.Request.Context(), user.ID, user.Username, user.Email); err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	helper.OK(ctx, http.StatusOK, "Profile updated successfully", models.ProfileData{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	})
}

// currentUser resolves the authenticated user record for the request. A
// false return means a response has already been written.
func (c *UserController) currentUser(ctx *gin.Context) (*models.User, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		helper.Fail(ctx, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	userIDStr, ok := userID.(string)
	if !ok {
		helper.Fail(ctx, http.StatusInternalServerError, "Invalid user ID format")
		return nil, false
	}

	objID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Invalid user ID format")
		return nil, false
	}

	user, err := c.userStore.FindByID(ctx.Request.Context(), objID)
	if err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to load user")
		return nil, false
	}
	if user == nil {
		helper.Fail(ctx, http.StatusUnauthorized, "User not found")
		return nil, false
	}

	return user, true
}

func moviePathParam(ctx *gin.Context) (int, bool) {
	movieID, err := strconv.Atoi(ctx.Param("movieId"))
	if err != nil {
		helper.Fail(ctx, http.StatusBadRequest, "Invalid movie ID")
		return 0, false
	}
	return movieID, true
}
