package services

import (
	"context"
	"encoding/json"

	"movie-discovery-backend/data_access"
)

// MovieService is the metadata gateway: every method forwards one
// read-only query to the catalog and hands back the upstream payload
// untouched. Failures are not retried.
type MovieService struct {
	tmdbClient *data_access.TMDBClient
}

func NewMovieService(tmdbAPIKey, tmdbBaseURL string) *MovieService {
	return &MovieService{
		tmdbClient: data_access.NewTMDBClient(tmdbAPIKey, tmdbBaseURL),
	}
}

func (s *MovieService) GetPopular(ctx context.Context, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/movie/popular", map[string]string{"page": page})
}

func (s *MovieService) Search(ctx context.Context, query, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/search/movie", map[string]string{"query": query, "page": page})
}

func (s *MovieService) GetDetails(ctx context.Context, movieID string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/movie/"+movieID, map[string]string{
		"append_to_response": "credits,videos,similar",
	})
}

func (s *MovieService) GetTrending(ctx context.Context, timeWindow string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/trending/movie/"+timeWindow, nil)
}

func (s *MovieService) GetTopRated(ctx context.Context, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/movie/top_rated", map[string]string{"page": page})
}

func (s *MovieService) GetUpcoming(ctx context.Context, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/movie/upcoming", map[string]string{"page": page})
}

func (s *MovieService) GetNowPlaying(ctx context.Context, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/movie/now_playing", map[string]string{"page": page})
}

func (s *MovieService) GetGenres(ctx context.Context) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/genre/movie/list", nil)
}

func (s *MovieService) GetByGenre(ctx context.Context, genreID, page string) (json.RawMessage, error) {
	return s.tmdbClient.Get(ctx, "/discover/movie", map[string]string{
		"with_genres": genreID,
		"page":        page,
	})
}
