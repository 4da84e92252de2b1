package service

import (
	"context"
	"testing"
	"time"

	"gamerank/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameFixture struct {
	svc      GameService
	games    *memGameRepo
	ratings  *memRatingRepo
	comments *memCommentRepo
	follows  *memFollowRepo
}

func newGameFixture(games ...models.Game) *gameFixture {
	gameRepo := newMemGameRepo(games...)
	ratingRepo := newMemRatingRepo(gameRepo)
	commentRepo := newMemCommentRepo(gameRepo,
		models.User{ID: "user-1", Username: "ana"},
	)
	followRepo := newMemFollowRepo(gameRepo)
	voteRepo := newMemVoteRepo()
	commentSvc := NewCommentService(commentRepo, voteRepo, gameRepo)
	return &gameFixture{
		svc:      NewGameService(gameRepo, ratingRepo, commentRepo, followRepo, commentSvc),
		games:    gameRepo,
		ratings:  ratingRepo,
		comments: commentRepo,
		follows:  followRepo,
	}
}

func TestListGames(t *testing.T) {
	ctx := context.Background()

	t.Run("OrderedByAverageWithUnratedLast", func(t *testing.T) {
		f := newGameFixture(
			models.Game{GameID: "a", Title: "Alpha"},
			models.Game{GameID: "b", Title: "Beta"},
			models.Game{GameID: "c", Title: "Gamma"},
		)
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "u1", GameID: "b", Score: 5}))
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "u1", GameID: "a", Score: 2}))

		resp, err := f.svc.ListGames(ctx, "")
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, "b", resp.Games[0].GameID)
		assert.Equal(t, "a", resp.Games[1].GameID)
		assert.Equal(t, "c", resp.Games[2].GameID)
		assert.Nil(t, resp.Games[2].AverageRating)
	})

	t.Run("TiesBreakOnIdentifier", func(t *testing.T) {
		f := newGameFixture(
			models.Game{GameID: "z", Title: "Zeta"},
			models.Game{GameID: "a", Title: "Alpha"},
		)
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "u1", GameID: "z", Score: 3}))
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "u1", GameID: "a", Score: 3}))

		resp, err := f.svc.ListGames(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "a", resp.Games[0].GameID)
		assert.Equal(t, "z", resp.Games[1].GameID)
	})

	t.Run("ViewerFollowsAreFlagged", func(t *testing.T) {
		f := newGameFixture(
			models.Game{GameID: "a", Title: "Alpha"},
			models.Game{GameID: "b", Title: "Beta"},
		)
		require.NoError(t, f.follows.Create(ctx, "user-1", "a"))

		resp, err := f.svc.ListGames(ctx, "user-1")
		require.NoError(t, err)
		byID := map[string]bool{}
		for _, g := range resp.Games {
			byID[g.GameID] = g.Following
		}
		assert.True(t, byID["a"])
		assert.False(t, byID["b"])
	})
}

func TestGetGameDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("IncludesAggregatesAndComments", func(t *testing.T) {
		f := newGameFixture(models.Game{GameID: "a", Title: "Alpha"})
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "user-1", GameID: "a", Score: 4}))
		require.NoError(t, f.comments.Create(ctx, &models.Comment{UserID: "user-1", GameID: "a", Text: "fun"}))

		detail, err := f.svc.GetGameDetail(ctx, "a", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Alpha", detail.Game.Title)
		require.NotNil(t, detail.AverageRating)
		assert.Equal(t, 4.0, *detail.AverageRating)
		assert.Equal(t, int64(1), detail.CommentCount)
		require.Len(t, detail.Comments, 1)
		require.NotNil(t, detail.MyScore)
		assert.Equal(t, 4, *detail.MyScore)
	})

	t.Run("UnknownGame", func(t *testing.T) {
		f := newGameFixture()

		_, err := f.svc.GetGameDetail(ctx, "nope", "")
		assert.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGetGameRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("UnratedGameHasNullAverage", func(t *testing.T) {
		released := time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)
		f := newGameFixture(models.Game{
			GameID:      "a",
			Title:       "Alpha",
			ReleaseDate: &released,
		})

		record, err := f.svc.GetGameRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "a", record.Identifier)
		assert.Nil(t, record.AverageRating)
		require.NotNil(t, record.ReleaseDate)
		assert.Equal(t, "2021-03-14", *record.ReleaseDate)
	})

	t.Run("MissingReleaseDateStaysNull", func(t *testing.T) {
		f := newGameFixture(models.Game{GameID: "a", Title: "Alpha"})

		record, err := f.svc.GetGameRecord(ctx, "a")
		require.NoError(t, err)
		assert.Nil(t, record.ReleaseDate)
	})
}

func TestSiteMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("AnonymousGetsSiteTotalsOnly", func(t *testing.T) {
		f := newGameFixture(models.Game{GameID: "a", Title: "Alpha"})
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "user-1", GameID: "a", Score: 4}))
		require.NoError(t, f.comments.Create(ctx, &models.Comment{UserID: "user-1", GameID: "a", Text: "fun"}))

		metrics, err := f.svc.SiteMetrics(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), metrics.TotalGames)
		assert.Equal(t, int64(1), metrics.TotalComments)
		assert.Zero(t, metrics.UserVotes)
		assert.Zero(t, metrics.UserComments)
	})

	t.Run("ViewerCountsIncluded", func(t *testing.T) {
		f := newGameFixture(models.Game{GameID: "a", Title: "Alpha"})
		require.NoError(t, f.ratings.Create(ctx, &models.Rating{UserID: "user-1", GameID: "a", Score: 4}))
		require.NoError(t, f.comments.Create(ctx, &models.Comment{UserID: "user-1", GameID: "a", Text: "fun"}))

		metrics, err := f.svc.SiteMetrics(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), metrics.UserVotes)
		assert.Equal(t, int64(1), metrics.UserComments)
	})
}
