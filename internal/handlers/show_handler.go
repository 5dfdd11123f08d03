package handlers

import (
	"net/http"
	"strconv"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

type ShowHandler struct {
	svc interfaces.ShowService
}

func NewShowHandler(svc interfaces.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

// @Tags Shows
// @Summary List shows, optionally for one venue or artist
// @Produce json
// @Param venue_id query int false "Venue ID"
// @Param artist_id query int false "Artist ID"
// @Success 200 {array} models.ShowListing
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/shows [get]
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter interfaces.ShowFilter
	var ok bool
	if filter.VenueID, ok = queryID(w, r, "venue_id"); !ok {
		return
	}
	if filter.ArtistID, ok = queryID(w, r, "artist_id"); !ok {
		return
	}

	shows, err := h.svc.ListShows(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "Show not found")
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

// @Tags Shows
// @Summary Schedule an artist at a venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ShowRequest true "Show"
// @Success 201 {object} models.Show
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/shows [post]
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ShowRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	show, err := h.svc.CreateShow(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Show not found")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Show was successfully listed!",
		"show":    show,
	})
}

// @Tags Genres
// @Summary List genres by name
// @Produce json
// @Success 200 {array} models.Genre
// @Router /api/v1/genres [get]
func (h *ShowHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		writeServiceError(w, err, "Genre not found")
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// queryID reads an optional positive id from the query string; absent is 0.
func queryID(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid "+key)
		return 0, false
	}
	return id, true
}
