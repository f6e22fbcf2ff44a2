package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
)

// UpsertStakingAggregate updates or inserts the per-user staking aggregate.
// The write is unconditional; the aggregate is cheap to recompute and a
// conditional write would risk staleness.
func (db *Database) UpsertStakingAggregate(ctx context.Context, aggDoc *model.StakingAggregateDocument) error {
	filter := bson.M{"_id": aggDoc.UserID}
	update := bson.M{
		"$set": bson.M{
			"total_staked":     aggDoc.TotalStaked,
			"total_rewards":    aggDoc.TotalRewards,
			"tier":             aggDoc.Tier.String(),
			"staking_start":    aggDoc.StakingStart,
			"last_reward":      aggDoc.LastReward,
			"projected_reward": aggDoc.ProjectedReward,
			"apy":              aggDoc.Apy,
			"last_updated":     time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.StakingAggregateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetStakingAggregate(ctx context.Context, userID string) (*model.StakingAggregateDocument, error) {
	filter := bson.M{"_id": userID}
	res := db.collection(model.StakingAggregateCollection).FindOne(ctx, filter)

	var aggDoc model.StakingAggregateDocument
	if err := res.Decode(&aggDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     userID,
				Message: "staking aggregate not found",
			}
		}
		return nil, err
	}

	return &aggDoc, nil
}
