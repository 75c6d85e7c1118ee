package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blaisecz/health-risk/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxBodyBytes caps request bodies; large evaluation batches fit comfortably.
const maxBodyBytes = 4 << 20

// writeJSON encodes v before writing the status, so an unencodable value becomes a
// 500 problem instead of a truncated success response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
		problem.InternalError("Failed to encode response").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// decodeJSON decodes the request body into dst and writes a 400 problem on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	return true
}

// patientID parses the {patientId} path parameter and writes a 400 problem on failure.
func patientID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
