package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/juancarlosvazquez23-del/Escudero/internal/models"
)

const bookListLimit = 1000

type BookHandler struct {
	collection *mongo.Collection
}

func NewBookHandler(client *mongo.Client, dbName string) *BookHandler {
	return &BookHandler{
		collection: client.Database(dbName).Collection("books"),
	}
}

type bookPayload struct {
	Titulo      string `json:"titulo"`
	Autor       string `json:"autor"`
	Carrera     string `json:"carrera"`
	Semestre    string `json:"semestre"`
	Genero      string `json:"genero"`
	Descripcion string `json:"descripcion"`
	Disponible  *bool  `json:"disponible"`
	FileName    string `json:"fileName"`
	FileData    string `json:"fileData"`
}

func bookFromPayload(p bookPayload, now time.Time) models.Book {
	book := models.Book{
		ID:          primitive.NewObjectID(),
		Titulo:      p.Titulo,
		Autor:       p.Autor,
		Carrera:     p.Carrera,
		Semestre:    p.Semestre,
		Genero:      p.Genero,
		Descripcion: p.Descripcion,
		Disponible:  true,
		FileName:    p.FileName,
		FileData:    p.FileData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Disponible != nil {
		book.Disponible = *p.Disponible
	}
	return book
}

// bookFilter builds the list filter: an empty query matches everything,
// anything else becomes a case-insensitive literal-substring match over
// title, author, genre and program.
func bookFilter(q string) bson.M {
	if q == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	return bson.M{"$or": []bson.M{
		{"titulo": re},
		{"autor": re},
		{"genero": re},
		{"carrera": re},
	}}
}

type bookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Carrera   string    `json:"carrera"`
	Semestre  string    `json:"semestre"`
	Genero    string    `json:"genero"`
	Desc      string    `json:"desc"`
	Available bool      `json:"available"`
	FileName  string    `json:"fileName"`
	FileData  string    `json:"fileData"`
	CreatedAt time.Time `json:"createdAt"`
}

func mapBook(b models.Book) bookResponse {
	return bookResponse{
		ID:        b.ID.Hex(),
		Title:     b.Titulo,
		Author:    b.Autor,
		Carrera:   b.Carrera,
		Semestre:  b.Semestre,
		Genero:    b.Genero,
		Desc:      b.Descripcion,
		Available: b.Disponible,
		FileName:  b.FileName,
		FileData:  b.FileData,
		CreatedAt: b.CreatedAt,
	}
}

// Create inserts a new book. Validation failures surface as 500 like any
// other store error.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	book := bookFromPayload(payload, time.Now())
	if err := book.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, book); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

// List returns the newest books first, optionally filtered by ?q=.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(bookListLimit)

	cursor, err := h.collection.Find(ctx, bookFilter(r.URL.Query().Get("q")), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err = cursor.All(ctx, &books); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mapped := make([]bookResponse, 0, len(books))
	for _, b := range books {
		mapped = append(mapped, mapBook(b))
	}

	writeJSON(w, http.StatusOK, mapped)
}

// Update applies a partial update by id and returns the updated book.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Libro no encontrado")
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

	var book models.Book
	err = h.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Libro no encontrado")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// Delete removes a book by id. Missing ids are not an error.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
