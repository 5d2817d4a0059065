package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin credentials are created out-of-band by cmd/seed; the API only
// reads them during login.
type Admin struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"password" bson:"password"`
}
