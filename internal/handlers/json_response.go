package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"showbook/internal/interfaces"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeServiceError maps the directory error taxonomy onto HTTP. Causes of
// persistence failures are logged by the service and never sent.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	var verr *interfaces.ValidationError
	var perr *interfaces.PersistenceError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation_error",
			"message": verr.Error(),
			"fields":  verr.Fields,
		})
	case errors.Is(err, interfaces.ErrNotFound):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.As(err, &perr):
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", perr.Error())
	default:
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred.")
	}
}

// parseID reads the {id} URL parameter. On failure the response is written
// and ok is false.
func parseID(w http.ResponseWriter, r *http.Request, entity string) (id int, ok bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", entity+" ID is required")
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid "+strings.ToLower(entity)+" ID")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

// searchTerm reads the term from the query string, a form body, or a JSON
// body, in that order.
func searchTerm(r *http.Request) (string, error) {
	if term := r.URL.Query().Get("search_term"); term != "" || r.Method == http.MethodGet {
		return term, nil
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			SearchTerm string `json:"search_term"`
		}
		// an empty body searches for everything
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return body.SearchTerm, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostForm.Get("search_term"), nil
}
