package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
)

// FindActiveUsers returns users who logged in after the given cutoff,
// most recently active first, capped at limit.
func (db *Database) FindActiveUsers(ctx context.Context, since time.Time, limit int64) ([]*model.UserDocument, error) {
	filter := bson.M{"last_login": bson.M{"$gte": since.Unix()}}
	opts := options.Find().
		SetSort(bson.D{{Key: "last_login", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.UserCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.UserDocument
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
