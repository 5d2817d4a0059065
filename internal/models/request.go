package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request is a loan request pointing at a Book. The reference is not
// enforced by the store: deleting a book leaves its requests dangling.
type Request struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookID        primitive.ObjectID `json:"bookId" bson:"bookId"`
	RequesterName string             `json:"requesterName,omitempty" bson:"requesterName,omitempty"`
	Ts            time.Time          `json:"ts" bson:"ts"`
	Returned      bool               `json:"returned" bson:"returned"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (r Request) Validate() error {
	if r.BookID.IsZero() {
		return errors.New("bookId is required")
	}
	return nil
}
