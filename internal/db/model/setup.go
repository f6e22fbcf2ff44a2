package model

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/config"
)

const setupTimeout = 30 * time.Second

// Setup creates the collections and indexes used by the sync engine.
// It is safe to run repeatedly; existing collections and indexes are kept.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from mongodb after setup")
		}
	}()

	database := client.Database(cfg.DbName)

	indexes := map[string][]mongo.IndexModel{
		WalletCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		TransactionCollection: {
			{Keys: bson.D{{Key: "from", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "to", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		StakingAggregateCollection: nil,
		UserCollection: {
			{Keys: bson.D{{Key: "last_login", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if err := database.CreateCollection(ctx, collection); err != nil {
			// collection may already exist
			var cmdErr mongo.CommandError
			if !errors.As(err, &cmdErr) || cmdErr.Code != namespaceExistsErrCode {
				return err
			}
		}
		if len(models) == 0 {
			continue
		}
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}

// namespaceExistsErrCode is returned by mongo when creating a collection
// that already exists.
const namespaceExistsErrCode = 48
