package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type News struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Titulo    string             `json:"titulo" bson:"titulo"`
	Cuerpo    string             `json:"cuerpo,omitempty" bson:"cuerpo,omitempty"`
	Img       string             `json:"img,omitempty" bson:"img,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (n News) Validate() error {
	if n.Titulo == "" {
		return errors.New("titulo is required")
	}
	return nil
}
