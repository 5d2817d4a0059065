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

const newsListLimit = 500

type NewsHandler struct {
	collection *mongo.Collection
}

func NewNewsHandler(client *mongo.Client, dbName string) *NewsHandler {
	return &NewsHandler{
		collection: client.Database(dbName).Collection("news"),
	}
}

type newsResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Ts    time.Time `json:"ts"`
	Img   string    `json:"img"`
}

func mapNews(n models.News) newsResponse {
	return newsResponse{
		ID:    n.ID.Hex(),
		Title: n.Titulo,
		Body:  n.Cuerpo,
		Ts:    n.CreatedAt,
		Img:   n.Img,
	}
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.News
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if err := item.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, item); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(newsListLimit)

	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var items []models.News
	if err = cursor.All(ctx, &items); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mapped := make([]newsResponse, 0, len(items))
	for _, n := range items {
		mapped = append(mapped, mapNews(n))
	}

	writeJSON(w, http.StatusOK, mapped)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Noticia no encontrada")
		return
	}

	var update bson.M
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	update = updateDocument(update, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item models.News
	err = h.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Noticia no encontrada")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
