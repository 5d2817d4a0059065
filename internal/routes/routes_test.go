package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/juancarlosvazquez23-del/Escudero/internal/auth"
)

// testRouter builds the real route table over a client that never reaches a
// server. The gate rejects unauthenticated requests before any store call,
// so these tests exercise routing and auth without a database.
func testRouter(t *testing.T, tokens *auth.Service) http.Handler {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return SetupRouter(client, "biblioteca_test", tokens, nil)
}

func TestLivenessRoutes(t *testing.T) {
	router := testRouter(t, auth.NewService("test-secret"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "Servidor Biblioteca OK" {
		t.Fatalf("GET /: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: %d", rec.Code)
	}
	var health map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil || !health["ok"] {
		t.Fatalf("GET /health body: %q", rec.Body.String())
	}
}

func TestProtectedRoutesRejectWithoutToken(t *testing.T) {
	router := testRouter(t, auth.NewService("test-secret"))

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/check"},
		{http.MethodPost, "/api/books"},
		{http.MethodPut, "/api/books/652d9c2f8a1b4c0011223344"},
		{http.MethodDelete, "/api/books/652d9c2f8a1b4c0011223344"},
		{http.MethodPost, "/api/news"},
		{http.MethodPut, "/api/news/652d9c2f8a1b4c0011223344"},
		{http.MethodDelete, "/api/news/652d9c2f8a1b4c0011223344"},
		{http.MethodDelete, "/api/attendance/652d9c2f8a1b4c0011223344"},
		{http.MethodDelete, "/api/requests/652d9c2f8a1b4c0011223344"},
	}

	for _, route := range protected {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", route.method, route.path, rec.Code)
		}

		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s with bad token: expected 403, got %d", route.method, route.path, rec.Code)
		}
	}
}

func TestAdminCheckWithValidToken(t *testing.T) {
	tokens := auth.NewService("test-secret")
	router := testRouter(t, tokens)

	token, err := tokens.GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Ok    bool   `json:"ok"`
		Admin string `json:"admin"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Ok || body.Admin != "admin" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
