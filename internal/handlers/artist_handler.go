package handlers

import (
	"errors"
	"net/http"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

type ArtistHandler struct {
	svc interfaces.ArtistService
}

func NewArtistHandler(svc interfaces.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

// @Tags Artists
// @Summary List artists by name
// @Produce json
// @Success 200 {array} models.ArtistSummary
// @Router /api/v1/artists [get]
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.svc.ListArtists(r.Context())
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

// @Tags Artists
// @Summary Search artists by name
// @Produce json
// @Param search_term query string false "Case-insensitive substring"
// @Success 200 {object} models.SearchResponse[models.ArtistSearchResult]
// @Router /api/v1/artists/search [get]
// @Router /api/v1/artists/search [post]
func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	term, err := searchTerm(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid search request")
		return
	}

	resp, err := h.svc.SearchArtists(r.Context(), term)
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Tags Artists
// @Summary Get an artist with past and upcoming shows
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.ArtistDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/artists/{id} [get]
func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Artist")
	if !ok {
		return
	}

	artist, err := h.svc.GetArtist(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Artist")
	if !ok {
		return
	}

	artist, err := h.svc.GetArtistForm(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

// @Tags Artists
// @Summary Create an artist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ArtistRequest true "Artist"
// @Success 201 {object} models.Artist
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/artists [post]
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ArtistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	artist, err := h.svc.CreateArtist(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Artist " + artist.Name + " was successfully listed!",
		"artist":  artist,
	})
}

// @Tags Artists
// @Summary Replace every field of an artist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param body body models.ArtistRequest true "Artist"
// @Success 200 {object} models.Artist
// @Router /api/v1/artists/{id} [put]
func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Artist")
	if !ok {
		return
	}

	var req models.ArtistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	artist, err := h.svc.EditArtist(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Artist " + artist.Name + " was successfully updated!",
		"artist":  artist,
	})
}

// @Tags Artists
// @Summary Delete an artist and its shows
// @Security BearerAuth
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/artists/{id} [delete]
func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Artist")
	if !ok {
		return
	}

	err := h.svc.DeleteArtist(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{"deleted": false, "message": "Artist not found"})
		return
	}
	if err != nil {
		writeServiceError(w, err, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "message": "Artist was successfully deleted!"})
}
