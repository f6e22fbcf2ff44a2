package model

const UserCollection = "users"

// UserDocument is written by the account layer, which is outside this
// service. The sync engine only reads it to select sweep candidates.
type UserDocument struct {
	ID        string `bson:"_id"`
	Email     string `bson:"email"`
	LastLogin int64  `bson:"last_login"` // unix seconds
}
