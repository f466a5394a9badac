package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMovieRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	movieService := services.NewMovieService("test-key", upstreamURL)
	controller := NewMovieController(movieService, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	movies := r.Group("/api/movies")
	{
		movies.GET("/popular", controller.GetPopular)
		movies.GET("/search", controller.Search)
		movies.GET("/trending/:timeWindow", controller.GetTrending)
		movies.GET("/genres", controller.GetGenres)
		movies.GET("/:id", controller.GetDetails)
	}
	return r
}

func TestGetPopularForwardsUpstreamPayload(t *testing.T) {
	payload := `{"page":2,"results":[{"id":42,"title":"Dune"}]}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(payload))
	}))
	defer upstream.Close()

	r := setupMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/popular?page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.JSONEq(t, payload, string(env.Data))
}

func TestSearchRequiresQuery(t *testing.T) {
	r := setupMovieRouter("http://localhost:0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "Search query is required", env.Message)
}

func TestUpstreamFailureIsGeneric(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status_message":"upstream exploded"}`))
	}))
	defer upstream.Close()

	r := setupMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	// Upstream cause is logged, never exposed
	assert.Equal(t, "Failed to fetch data from TMDB", env.Message)
	assert.NotContains(t, w.Body.String(), "upstream exploded")
}

func TestGetDetailsUsesPathID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "credits,videos,similar", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix"}`))
	}))
	defer upstream.Close()

	r := setupMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/603", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
