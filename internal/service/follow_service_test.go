package service

import (
	"context"
	"testing"

	"gamerank/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowFixture() (FollowService, *memRatingRepo, *memGameRepo) {
	games := newMemGameRepo(
		models.Game{GameID: "LIS1-1", Title: "Chess Arena"},
		models.Game{GameID: "LIS1-2", Title: "Star Drift"},
		models.Game{GameID: "LIS1-3", Title: "Mud Racer"},
	)
	ratings := newMemRatingRepo(games)
	follows := newMemFollowRepo(games)
	return NewFollowService(follows, ratings, games), ratings, games
}

func TestFollowToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("FollowThenUnfollowThenFollow", func(t *testing.T) {
		svc, _, _ := newFollowFixture()

		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-1"))
		following, err := svc.IsFollowing(ctx, "user-1", "LIS1-1")
		require.NoError(t, err)
		assert.True(t, following)

		require.NoError(t, svc.Unfollow(ctx, "user-1", "LIS1-1"))
		following, err = svc.IsFollowing(ctx, "user-1", "LIS1-1")
		require.NoError(t, err)
		assert.False(t, following)

		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-1"))
		following, err = svc.IsFollowing(ctx, "user-1", "LIS1-1")
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("DoubleFollowIsANoOp", func(t *testing.T) {
		svc, _, _ := newFollowFixture()

		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-1"))
		err := svc.Follow(ctx, "user-1", "LIS1-1")
		assert.ErrorIs(t, err, ErrAlreadyFollowing)

		following, err := svc.IsFollowing(ctx, "user-1", "LIS1-1")
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("UnfollowWithoutFollowing", func(t *testing.T) {
		svc, _, _ := newFollowFixture()

		err := svc.Unfollow(ctx, "user-1", "LIS1-1")
		assert.ErrorIs(t, err, ErrNotFollowing)
	})

	t.Run("UnknownGame", func(t *testing.T) {
		svc, _, _ := newFollowFixture()

		assert.ErrorIs(t, svc.Follow(ctx, "user-1", "nope"), ErrGameNotFound)
		assert.ErrorIs(t, svc.Unfollow(ctx, "user-1", "nope"), ErrGameNotFound)
	})
}

func TestGetFollowedGames(t *testing.T) {
	ctx := context.Background()

	t.Run("OrderedByAverageDescending", func(t *testing.T) {
		svc, ratings, _ := newFollowFixture()

		require.NoError(t, ratings.Create(ctx, &models.Rating{UserID: "u", GameID: "LIS1-2", Score: 5}))
		require.NoError(t, ratings.Create(ctx, &models.Rating{UserID: "u", GameID: "LIS1-1", Score: 3}))

		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-1"))
		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-2"))
		require.NoError(t, svc.Follow(ctx, "user-1", "LIS1-3"))

		resp, err := svc.GetFollowedGames(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)

		// unrated games sort last, everything is flagged as followed
		assert.Equal(t, "LIS1-2", resp.Games[0].GameID)
		assert.Equal(t, "LIS1-1", resp.Games[1].GameID)
		assert.Equal(t, "LIS1-3", resp.Games[2].GameID)
		assert.Nil(t, resp.Games[2].AverageRating)
		for _, g := range resp.Games {
			assert.True(t, g.Following)
		}
	})

	t.Run("EmptyForUserWithNoFollows", func(t *testing.T) {
		svc, _, _ := newFollowFixture()

		resp, err := svc.GetFollowedGames(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Games)
	})
}
