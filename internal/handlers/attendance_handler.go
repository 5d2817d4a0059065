package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/juancarlosvazquez23-del/Escudero/internal/models"
)

const attendanceListLimit = 2000

type AttendanceHandler struct {
	collection *mongo.Collection
}

func NewAttendanceHandler(client *mongo.Client, dbName string) *AttendanceHandler {
	return &AttendanceHandler{
		collection: client.Database(dbName).Collection("attendances"),
	}
}

// stampAttendance assigns the id and the server-side timestamp, discarding
// whatever fecha the client sent. Check-ins cannot be backdated.
func stampAttendance(a models.Attendance, now time.Time) models.Attendance {
	a.ID = primitive.NewObjectID()
	a.Fecha = now
	a.CreatedAt = now
	a.UpdatedAt = now
	return a
}

func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record models.Attendance
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record = stampAttendance(record, time.Now())
	if err := record.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, record); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// List returns check-ins newest first, as stored (no reshaping).
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "fecha", Value: -1}}).
		SetLimit(attendanceListLimit)

	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	records := make([]models.Attendance, 0)
	if err = cursor.All(ctx, &records); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"]); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
