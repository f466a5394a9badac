package controllers

import (
	"log/slog"
	"net/http"

	"movie-discovery-backend/helper"
	"movie-discovery-backend/metrics"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
)

// MovieController exposes the metadata gateway. Upstream failures are
// logged with their cause but surface to the client as a generic message.
type MovieController struct {
	movieService *services.MovieService
	log          *slog.Logger
}

func NewMovieController(movieService *services.MovieService, log *slog.Logger) *MovieController {
	return &MovieController{
		movieService: movieService,
		log:          log,
	}
}

func (c *MovieController) GetPopular(ctx *gin.Context) {
	data, err := c.movieService.GetPopular(ctx.Request.Context(), ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) Search(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		helper.Fail(ctx, http.StatusBadRequest, "Search query is required")
		return
	}

	data, err := c.movieService.Search(ctx.Request.Context(), query, ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) GetDetails(ctx *gin.Context) {
	data, err := c.movieService.GetDetails(ctx.Request.Context(), ctx.Param("id"))
	c.respond(ctx, data, err)
}

func (c *MovieController) GetTrending(ctx *gin.Context) {
	timeWindow := ctx.Param("timeWindow")
	if timeWindow == "" {
		timeWindow = "week"
	}

	data, err := c.movieService.GetTrending(ctx.Request.Context(), timeWindow)
	c.respond(ctx, data, err)
}

func (c *MovieController) GetTopRated(ctx *gin.Context) {
	data, err := c.movieService.GetTopRated(ctx.Request.Context(), ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) GetUpcoming(ctx *gin.Context) {
	data, err := c.movieService.GetUpcoming(ctx.Request.Context(), ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) GetNowPlaying(ctx *gin.Context) {
	data, err := c.movieService.GetNowPlaying(ctx.Request.Context(), ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) GetGenres(ctx *gin.Context) {
	data, err := c.movieService.GetGenres(ctx.Request.Context())
	c.respond(ctx, data, err)
}

func (c *MovieController) GetByGenre(ctx *gin.Context) {
	data, err := c.movieService.GetByGenre(ctx.Request.Context(), ctx.Param("genreId"), ctx.DefaultQuery("page", "1"))
	c.respond(ctx, data, err)
}

func (c *MovieController) respond(ctx *gin.Context, data interface{}, err error) {
	if err != nil {
		c.log.Error("metadata gateway request failed", "path", ctx.FullPath(), "error", err)
		metrics.GatewayFailures.Inc()
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to fetch data from TMDB")
		return
	}

	helper.OK(ctx, http.StatusOK, "", data)
}
