package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is a public check-in. Fecha is always assigned by the server
// at creation time; client-supplied values are discarded.
type Attendance struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombres   string             `json:"nombres" bson:"nombres"`
	Apellidos string             `json:"apellidos" bson:"apellidos"`
	Matricula string             `json:"matricula,omitempty" bson:"matricula,omitempty"`
	Carrera   string             `json:"carrera,omitempty" bson:"carrera,omitempty"`
	Semestre  string             `json:"semestre,omitempty" bson:"semestre,omitempty"`
	Genero    string             `json:"genero,omitempty" bson:"genero,omitempty"`
	Actividad string             `json:"actividad,omitempty" bson:"actividad,omitempty"`
	Fecha     time.Time          `json:"fecha" bson:"fecha"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (a Attendance) Validate() error {
	if a.Nombres == "" {
		return errors.New("nombres is required")
	}
	if a.Apellidos == "" {
		return errors.New("apellidos is required")
	}
	return nil
}
