// Package models holds the persisted entities of the server.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents one registered account.
//
// Password always holds a bcrypt hash, never the plaintext; the json:"-" tag
// keeps it out of every API response. Age is optional.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	Age       *int          `bson:"age,omitempty" json:"age,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}
