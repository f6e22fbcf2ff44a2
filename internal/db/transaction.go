package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
	"github.com/niloticlabs/nilotic-ledger-sync/internal/types"
)

// InsertTransaction inserts a transaction row keyed by hash. A transaction
// already in the store yields a DuplicateKeyError; the hash is the
// idempotence anchor, so callers treat that as "seen before", not a failure.
func (db *Database) InsertTransaction(ctx context.Context, txDoc *model.TransactionDocument) error {
	_, err := db.collection(model.TransactionCollection).InsertOne(ctx, txDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     txDoc.Hash,
						Message: "transaction already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

// ConfirmTransaction promotes a pending transaction to confirmed and
// backfills block metadata. The filter matches only pending rows, so a
// confirmed transaction can never revert; the returned bool reports whether
// a promotion actually happened.
func (db *Database) ConfirmTransaction(
	ctx context.Context, hash string, blockHeight int64, fee float64, gasUsed int64,
) (bool, error) {
	filter := bson.M{
		"_id":    hash,
		"status": types.StatusPending.String(),
	}

	updateFields := bson.M{
		"status": types.StatusConfirmed.String(),
	}
	if blockHeight != 0 {
		updateFields["block_height"] = blockHeight
	}
	if fee != 0 {
		updateFields["fee"] = fee
	}
	if gasUsed != 0 {
		updateFields["gas_used"] = gasUsed
	}

	res, err := db.collection(model.TransactionCollection).
		UpdateOne(ctx, filter, bson.M{"$set": updateFields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (db *Database) GetTransactionByHash(ctx context.Context, hash string) (*model.TransactionDocument, error) {
	filter := bson.M{"_id": hash}
	res := db.collection(model.TransactionCollection).FindOne(ctx, filter)

	var txDoc model.TransactionDocument
	if err := res.Decode(&txDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     hash,
				Message: "transaction not found by hash",
			}
		}
		return nil, err
	}

	return &txDoc, nil
}

// GetTransactionsByAddresses returns every stored transaction touching any
// of the given addresses on either side, newest first.
func (db *Database) GetTransactionsByAddresses(
	ctx context.Context, addresses []string,
) ([]*model.TransactionDocument, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"$or": []bson.M{
			{"from": bson.M{"$in": addresses}},
			{"to": bson.M{"$in": addresses}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := db.collection(model.TransactionCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []*model.TransactionDocument
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetRecentTransactions is GetTransactionsByAddresses with a cap, used by
// the status surface.
func (db *Database) GetRecentTransactions(
	ctx context.Context, addresses []string, limit int64,
) ([]*model.TransactionDocument, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"$or": []bson.M{
			{"from": bson.M{"$in": addresses}},
			{"to": bson.M{"$in": addresses}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.TransactionCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []*model.TransactionDocument
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
