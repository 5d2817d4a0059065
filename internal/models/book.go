package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Titulo      string             `json:"titulo" bson:"titulo"`
	Autor       string             `json:"autor,omitempty" bson:"autor,omitempty"`
	Carrera     string             `json:"carrera,omitempty" bson:"carrera,omitempty"`
	Semestre    string             `json:"semestre,omitempty" bson:"semestre,omitempty"`
	Genero      string             `json:"genero,omitempty" bson:"genero,omitempty"`
	Descripcion string             `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Disponible  bool               `json:"disponible" bson:"disponible"`
	FileName    string             `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileData    string             `json:"fileData,omitempty" bson:"fileData,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (b Book) Validate() error {
	if b.Titulo == "" {
		return errors.New("titulo is required")
	}
	return nil
}
