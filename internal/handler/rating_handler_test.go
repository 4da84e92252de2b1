package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamerank/internal/dto"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRatingService returns canned data and records what it was asked.
type stubRatingService struct {
	rateCalls int
	rateErr   error
}

func (s *stubRatingService) RateGame(ctx context.Context, userID, gameID string, score int) (*dto.RatingSummaryResponse, error) {
	s.rateCalls++
	if s.rateErr != nil {
		return nil, s.rateErr
	}
	avg := float64(score)
	return &dto.RatingSummaryResponse{GameID: gameID, AverageRating: &avg, TotalVotes: 1, MyScore: &score}, nil
}

func (s *stubRatingService) GameRatingSummary(ctx context.Context, gameID, viewerID string) (*dto.RatingSummaryResponse, error) {
	if gameID == "missing" {
		return nil, service.ErrGameNotFound
	}
	avg := 3.5
	return &dto.RatingSummaryResponse{GameID: gameID, AverageRating: &avg, TotalVotes: 2}, nil
}

func newRatingRouter(svc service.RatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	fakeAuth := func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	}
	NewRatingHandler(svc).RegisterRoutes(r.Group("/api/games"), fakeAuth)
	return r
}

func TestRatingHandlerCreate(t *testing.T) {
	t.Run("ValidScoreReturns201", func(t *testing.T) {
		stub := &stubRatingService{}
		r := newRatingRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/games/g1/ratings", strings.NewReader(`{"score": 4}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, stub.rateCalls)

		var resp dto.RatingSummaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "g1", resp.GameID)
	})

	t.Run("MissingScoreAnswers200WithCurrentSummary", func(t *testing.T) {
		stub := &stubRatingService{}
		r := newRatingRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/games/g1/ratings", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		// nothing written, current state redisplayed
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, stub.rateCalls)

		var resp dto.RatingSummaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.TotalVotes)
	})

	t.Run("RepeatedRatingAnswers200WithCurrentSummary", func(t *testing.T) {
		stub := &stubRatingService{rateErr: service.ErrAlreadyRated}
		r := newRatingRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/games/g1/ratings", strings.NewReader(`{"score": 1}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownGameIs404", func(t *testing.T) {
		stub := &stubRatingService{rateErr: service.ErrGameNotFound}
		r := newRatingRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/games/missing/ratings", strings.NewReader(`{"score": 4}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRatingHandlerSummary(t *testing.T) {
	t.Run("AnonymousGetWorks", func(t *testing.T) {
		r := newRatingRouter(&stubRatingService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/games/g1/ratings", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownGameIs404", func(t *testing.T) {
		r := newRatingRouter(&stubRatingService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/games/missing/ratings", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
