package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// updateDocument normalizes a decoded partial update. A JSON null body
// decodes to a nil map, so allocate before writing; ids can never be
// overwritten and updatedAt is always stamped server-side.
func updateDocument(update bson.M, now time.Time) bson.M {
	if update == nil {
		update = bson.M{}
	}
	delete(update, "_id")
	delete(update, "id")
	update["updatedAt"] = now
	return update
}
