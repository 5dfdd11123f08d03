package handlers

import (
	"errors"
	"net/http"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

type VenueHandler struct {
	svc interfaces.VenueService
}

func NewVenueHandler(svc interfaces.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// @Tags Venues
// @Summary List venues grouped by city and state
// @Produce json
// @Success 200 {array} models.VenueLocation
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/venues [get]
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.svc.ListVenuesByLocation(r.Context())
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

// @Tags Venues
// @Summary Search venues by name
// @Produce json
// @Param search_term query string false "Case-insensitive substring"
// @Success 200 {object} models.SearchResponse[models.VenueSearchResult]
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/venues/search [get]
// @Router /api/v1/venues/search [post]
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	term, err := searchTerm(r)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid search request")
		return
	}

	resp, err := h.svc.SearchVenues(r.Context(), term)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Tags Venues
// @Summary Get a venue with its past and upcoming shows
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} models.VenueDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/venues/{id} [get]
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Venue")
	if !ok {
		return
	}

	venue, err := h.svc.GetVenue(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// EditForm returns the values an edit form starts from.
func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Venue")
	if !ok {
		return
	}

	venue, err := h.svc.GetVenueForm(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// @Tags Venues
// @Summary Create a venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.VenueRequest true "Venue"
// @Success 201 {object} models.Venue
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/venues [post]
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.VenueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	venue, err := h.svc.CreateVenue(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Venue " + venue.Name + " was successfully listed!",
		"venue":   venue,
	})
}

// @Tags Venues
// @Summary Replace every field of a venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param body body models.VenueRequest true "Venue"
// @Success 200 {object} models.Venue
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/venues/{id} [put]
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Venue")
	if !ok {
		return
	}

	var req models.VenueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	venue, err := h.svc.EditVenue(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Venue " + venue.Name + " was successfully updated!",
		"venue":   venue,
	})
}

// @Tags Venues
// @Summary Delete a venue and its shows
// @Security BearerAuth
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/venues/{id} [delete]
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Venue")
	if !ok {
		return
	}

	err := h.svc.DeleteVenue(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		// deleting something already gone is not an error for the caller
		writeJSON(w, http.StatusOK, map[string]any{"deleted": false, "message": "Venue not found"})
		return
	}
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "message": "Venue was successfully deleted!"})
}

// @Tags Venues
// @Summary List a venue's shows
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {array} models.ArtistShow
// @Router /api/v1/venues/{id}/shows [get]
func (h *VenueHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Venue")
	if !ok {
		return
	}

	shows, err := h.svc.ListShowsForVenue(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, shows)
}
