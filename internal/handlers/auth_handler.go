package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/juancarlosvazquez23-del/Escudero/internal/auth"
	"github.com/juancarlosvazquez23-del/Escudero/internal/models"
)

type AuthHandler struct {
	admins *mongo.Collection
	tokens *auth.Service
}

func NewAuthHandler(client *mongo.Client, dbName string, tokens *auth.Service) *AuthHandler {
	return &AuthHandler{
		admins: client.Database(dbName).Collection("admins"),
		tokens: tokens,
	}
}

// Login authenticates the admin and issues a token. Failed lookups and bad
// passwords answer 200 with ok:false; clients key off the body, not the
// status.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := h.admins.FindOne(ctx, bson.M{"username": credentials.Username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "msg": "Usuario no encontrado"})
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(credentials.Password)); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "msg": "Contraseña incorrecta"})
		return
	}

	token, err := h.tokens.GenerateToken(admin.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "token": token})
}

// Check confirms the caller's token is still valid. The gate has already
// verified it and stored the username in the context.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value("admin").(string)
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "admin": username})
}
