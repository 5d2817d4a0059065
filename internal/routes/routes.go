package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/juancarlosvazquez23-del/Escudero/internal/auth"
	"github.com/juancarlosvazquez23-del/Escudero/internal/handlers"
	"github.com/juancarlosvazquez23-del/Escudero/internal/middleware"
	"github.com/juancarlosvazquez23-del/Escudero/internal/utils"
)

// SetupRouter binds every route, applying the admin gate only where the
// route mutates state (plus the token check endpoint). List routes stay
// public.
func SetupRouter(client *mongo.Client, dbName string, tokens *auth.Service, mailer *utils.Mailer) *mux.Router {
	router := mux.NewRouter()
	admin := middleware.AdminAuth(tokens)
	protected := func(h http.HandlerFunc) http.Handler {
		return admin(h)
	}

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Servidor Biblioteca OK"))
	}).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}).Methods("GET")

	authHandler := handlers.NewAuthHandler(client, dbName, tokens)
	router.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	router.Handle("/api/admin/check", protected(authHandler.Check)).Methods("GET")

	bookHandler := handlers.NewBookHandler(client, dbName)
	router.Handle("/api/books", protected(bookHandler.Create)).Methods("POST")
	router.HandleFunc("/api/books", bookHandler.List).Methods("GET")
	router.Handle("/api/books/{id}", protected(bookHandler.Update)).Methods("PUT")
	router.Handle("/api/books/{id}", protected(bookHandler.Delete)).Methods("DELETE")

	newsHandler := handlers.NewNewsHandler(client, dbName)
	router.Handle("/api/news", protected(newsHandler.Create)).Methods("POST")
	router.HandleFunc("/api/news", newsHandler.List).Methods("GET")
	router.Handle("/api/news/{id}", protected(newsHandler.Update)).Methods("PUT")
	router.Handle("/api/news/{id}", protected(newsHandler.Delete)).Methods("DELETE")

	attendanceHandler := handlers.NewAttendanceHandler(client, dbName)
	router.HandleFunc("/api/attendance", attendanceHandler.Create).Methods("POST")
	router.HandleFunc("/api/attendance", attendanceHandler.List).Methods("GET")
	router.Handle("/api/attendance/{id}", protected(attendanceHandler.Delete)).Methods("DELETE")

	requestHandler := handlers.NewRequestHandler(client, dbName, mailer)
	router.HandleFunc("/api/requests", requestHandler.Create).Methods("POST")
	router.HandleFunc("/api/requests", requestHandler.List).Methods("GET")
	router.Handle("/api/requests/{id}", protected(requestHandler.Delete)).Methods("DELETE")

	return router
}
