package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/juancarlosvazquez23-del/Escudero/internal/models"
	"github.com/juancarlosvazquez23-del/Escudero/internal/utils"
)

const requestListLimit = 1000

type RequestHandler struct {
	collection *mongo.Collection
	mailer     *utils.Mailer
}

// NewRequestHandler wires the requests collection and an optional mailer;
// pass nil to disable loan-request notifications.
func NewRequestHandler(client *mongo.Client, dbName string, mailer *utils.Mailer) *RequestHandler {
	return &RequestHandler{
		collection: client.Database(dbName).Collection("requests"),
		mailer:     mailer,
	}
}

type requestPayload struct {
	BookID        string     `json:"bookId"`
	RequesterName string     `json:"requesterName"`
	Ts            *time.Time `json:"ts"`
	Returned      bool       `json:"returned"`
}

// Create records a loan request. The referenced book's existence is not
// checked; the reference may dangle from the start.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	bookID, err := primitive.ObjectIDFromHex(payload.BookID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "bookId is required")
		return
	}

	now := time.Now()
	request := models.Request{
		ID:            primitive.NewObjectID(),
		BookID:        bookID,
		RequesterName: payload.RequesterName,
		Ts:            now,
		Returned:      payload.Returned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if payload.Ts != nil {
		request.Ts = *payload.Ts
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, request); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.mailer != nil {
		go h.notify(request)
	}

	writeJSON(w, http.StatusCreated, request)
}

func (h *RequestHandler) notify(request models.Request) {
	body := fmt.Sprintf(
		"<p>Nueva solicitud de préstamo de <b>%s</b>.</p><p>Libro: %s</p>",
		request.RequesterName, request.BookID.Hex(),
	)
	if err := h.mailer.Send("Nueva solicitud de préstamo", body); err != nil {
		log.Printf("Failed to send loan request notification: %v", err)
	}
}

// requestListPipeline expands each request's book inline, like a
// document-join: bookId becomes the full book document, or disappears when
// the book has been deleted.
func requestListPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: requestListLimit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "books"},
			{Key: "localField", Value: "bookId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "bookId"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "bookId", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$bookId", 0}}}},
		}}},
	}
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Aggregate(ctx, requestListPipeline())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	requests := make([]bson.M, 0)
	if err = cursor.All(ctx, &requests); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
