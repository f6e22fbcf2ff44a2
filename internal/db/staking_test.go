//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

func TestStakingAggregates(t *testing.T) {
	ctx := t.Context()

	t.Run("upsert inserts then updates", func(t *testing.T) {
		const userID = "user-staking-1"

		aggDoc := &model.StakingAggregateDocument{
			UserID:          userID,
			TotalStaked:     150,
			TotalRewards:    3,
			Tier:            types.TierSilver,
			StakingStart:    1700000000,
			ProjectedReward: 150 * 0.125 / 365,
			Apy:             0.125,
		}
		require.NoError(t, testDB.UpsertStakingAggregate(ctx, aggDoc))

		stored, err := testDB.GetStakingAggregate(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 150.0, stored.TotalStaked)
		assert.Equal(t, types.TierSilver, stored.Tier)
		assert.NotZero(t, stored.LastUpdated)

		// second pass moves the user up a tier
		aggDoc.TotalStaked = 600
		aggDoc.Tier = types.TierGold
		require.NoError(t, testDB.UpsertStakingAggregate(ctx, aggDoc))

		stored, err = testDB.GetStakingAggregate(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 600.0, stored.TotalStaked)
		assert.Equal(t, types.TierGold, stored.Tier)
	})

	t.Run("missing aggregate", func(t *testing.T) {
		_, err := testDB.GetStakingAggregate(ctx, "no-such-user")
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}

func TestFindActiveUsers(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	users := []*model.UserDocument{
		{ID: "active-1", Email: "a1@example.com", LastLogin: now.Add(-10 * time.Minute).Unix()},
		{ID: "active-2", Email: "a2@example.com", LastLogin: now.Add(-2 * time.Hour).Unix()},
		{ID: "dormant", Email: "d@example.com", LastLogin: now.Add(-48 * time.Hour).Unix()},
	}
	for _, user := range users {
		_, err := mongoDB.Collection(model.UserCollection).InsertOne(ctx, user)
		require.NoError(t, err)
	}

	found, err := testDB.FindActiveUsers(ctx, now.Add(-24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	// most recently active first
	assert.Equal(t, "active-1", found[0].ID)
	assert.Equal(t, "active-2", found[1].ID)

	// the cap applies after sorting
	found, err = testDB.FindActiveUsers(ctx, now.Add(-24*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "active-1", found[0].ID)
}
