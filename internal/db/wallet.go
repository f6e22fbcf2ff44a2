package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niloticlabs/nilotic-ledger-sync/internal/db/model"
)

func (db *Database) SaveNewWallet(ctx context.Context, walletDoc *model.WalletDocument) error {
	_, err := db.collection(model.WalletCollection).InsertOne(ctx, walletDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     walletDoc.Address,
						Message: "wallet already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetWalletByAddress(ctx context.Context, address string) (*model.WalletDocument, error) {
	filter := bson.M{"_id": address}
	res := db.collection(model.WalletCollection).FindOne(ctx, filter)

	var walletDoc model.WalletDocument
	if err := res.Decode(&walletDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "wallet not found by address",
			}
		}
		return nil, err
	}

	return &walletDoc, nil
}

func (db *Database) GetWalletsByUser(ctx context.Context, userID string) ([]*model.WalletDocument, error) {
	filter := bson.M{"user_id": userID}
	cursor, err := db.collection(model.WalletCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var wallets []*model.WalletDocument
	if err := cursor.All(ctx, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// UpdateWalletBalances writes freshly reconciled balance figures and bumps
// the wallet's last-activity timestamp. Name, kind and ownership are never
// touched by the sync engine.
func (db *Database) UpdateWalletBalances(
	ctx context.Context, address string, balance, staked, rewards float64, lastActivity int64,
) error {
	filter := bson.M{"_id": address}
	update := bson.M{
		"$set": bson.M{
			"balance":       balance,
			"staked":        staked,
			"rewards":       rewards,
			"last_activity": lastActivity,
		},
	}

	res, err := db.collection(model.WalletCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     address,
			Message: "wallet not found when updating balances",
		}
	}
	return nil
}
