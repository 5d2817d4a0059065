package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookFromPayloadDefaults(t *testing.T) {
	now := time.Now()

	book := bookFromPayload(bookPayload{Titulo: "Dune"}, now)
	if !book.Disponible {
		t.Fatal("disponible should default to true")
	}
	if book.ID.IsZero() {
		t.Fatal("expected an assigned id")
	}
	if !book.CreatedAt.Equal(now) || !book.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not set: %+v", book)
	}
	if err := book.Validate(); err != nil {
		t.Fatalf("title-only book should validate: %v", err)
	}

	notAvailable := false
	book = bookFromPayload(bookPayload{Titulo: "Dune", Disponible: &notAvailable}, now)
	if book.Disponible {
		t.Fatal("explicit disponible=false should be kept")
	}
}

func TestBookValidateRequiresTitle(t *testing.T) {
	book := bookFromPayload(bookPayload{Autor: "Herbert"}, time.Now())
	if err := book.Validate(); err == nil {
		t.Fatal("expected validation error for missing titulo")
	}
}

func TestBookFilterEmptyQuery(t *testing.T) {
	filter := bookFilter("")
	if len(filter) != 0 {
		t.Fatalf("empty query should match everything, got %v", filter)
	}
}

func TestBookFilterSearchFields(t *testing.T) {
	filter := bookFilter("hist")

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 4 {
		t.Fatalf("expected 4 branches, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, branch := range or {
		for field, v := range branch {
			fields[field] = true
			re, ok := v.(primitive.Regex)
			if !ok {
				t.Fatalf("field %s: expected regex, got %T", field, v)
			}
			if re.Pattern != "hist" || re.Options != "i" {
				t.Fatalf("field %s: unexpected regex %v", field, re)
			}
		}
	}
	for _, field := range []string{"titulo", "autor", "genero", "carrera"} {
		if !fields[field] {
			t.Fatalf("missing search field %s", field)
		}
	}
}

func TestBookFilterEscapesMetacharacters(t *testing.T) {
	filter := bookFilter("c++")

	or := filter["$or"].([]bson.M)
	re := or[0]["titulo"].(primitive.Regex)
	if re.Pattern != `c\+\+` {
		t.Fatalf("query must be matched literally, got pattern %q", re.Pattern)
	}
}

func TestBookUpdateInvalidIDNotFound(t *testing.T) {
	handler := NewBookHandler(testClient(t), "biblioteca_test")

	// An unparseable id cannot exist, so the handler answers 404 before
	// any store call. A null body must not panic either way.
	for _, body := range []string{"null", `{"titulo":"Dune"}`} {
		req := httptest.NewRequest(http.MethodPut, "/api/books/not-a-hex-id", strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "not-a-hex-id"})
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("body %q: expected 404, got %d", body, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp["error"] != "Libro no encontrado" {
			t.Fatalf("unexpected body: %v", resp)
		}
	}
}

func TestMapBookRenamesFields(t *testing.T) {
	created := time.Now()
	book := bookFromPayload(bookPayload{
		Titulo:      "Dune",
		Autor:       "Frank Herbert",
		Carrera:     "Letras",
		Semestre:    "3",
		Genero:      "Ciencia ficción",
		Descripcion: "Clásico",
		FileName:    "dune.pdf",
		FileData:    "data:application/pdf;base64,AAAA",
	}, created)

	resp := mapBook(book)
	if resp.ID != book.ID.Hex() {
		t.Fatalf("id not mapped: %q", resp.ID)
	}
	if resp.Title != "Dune" || resp.Author != "Frank Herbert" || resp.Desc != "Clásico" {
		t.Fatalf("renamed fields wrong: %+v", resp)
	}
	if !resp.Available {
		t.Fatal("available flag lost in mapping")
	}
	if resp.FileName != "dune.pdf" || resp.FileData == "" {
		t.Fatalf("file reference lost: %+v", resp)
	}
	if !resp.CreatedAt.Equal(created) {
		t.Fatalf("createdAt not carried: %v", resp.CreatedAt)
	}
}
