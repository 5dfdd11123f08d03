package models

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "8193921234", NormalizePhone("(819) 392-1234"))
	assert.Equal(t, "15551234567", NormalizePhone("+1 555.123.4567"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestDisplayPhone(t *testing.T) {
	assert.Equal(t, "819-392-1234", DisplayPhone("8193921234"))
	assert.Equal(t, "15551234567", DisplayPhone("15551234567"))
	assert.Equal(t, "", DisplayPhone(""))
}

func validVenueRequest() VenueRequest {
	return VenueRequest{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "(123) 123-1234",
		Website: "https://www.themusicalhop.com",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	out := map[string]string{}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestVenueRequestValidation(t *testing.T) {
	v := NewValidator()

	req := validVenueRequest()
	require.NoError(t, v.Struct(req))

	req.Genres = []string{}
	require.NoError(t, v.Struct(req), "empty genre list is allowed")

	bad := validVenueRequest()
	bad.Name = ""
	bad.Website = "not a url"
	bad.Phone = "call me maybe"
	bad.Genres = []string{"Jazz", ""}
	errs := fieldErrors(t, v.Struct(bad))
	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "url", errs["website"])
	assert.Equal(t, "phone", errs["phone"])
	assert.Equal(t, "required", errs["genres[1]"])
}

func TestPhoneValidation(t *testing.T) {
	v := NewValidator()
	type holder struct {
		Phone string `json:"phone" validate:"phone"`
	}
	assert.NoError(t, v.Struct(holder{"819-392-1234"}))
	assert.NoError(t, v.Struct(holder{"+44 (20) 7946 0958"}))
	assert.Error(t, v.Struct(holder{"12345"}))
	assert.Error(t, v.Struct(holder{"819x392x1234"}))
}

func TestVenueRequestTrimAndBuild(t *testing.T) {
	req := VenueRequest{
		Name:   "  The Musical Hop ",
		Phone:  " (819) 392-1234 ",
		Genres: []string{" Jazz", "Blues ", "Jazz "},
	}
	req.Trim()
	venue := req.Venue()

	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, "8193921234", venue.Phone)
	assert.Equal(t, []string{"Blues", "Jazz"}, venue.Genres)
}

func TestArtistRequestTrimMakesGenreSet(t *testing.T) {
	req := ArtistRequest{}
	req.Trim()
	assert.NotNil(t, req.Genres)
	assert.Empty(t, req.Genres)

	req.Genres = []string{"Rock n Roll", " Blues", "Rock n Roll", ""}
	req.Trim()
	assert.Equal(t, []string{"", "Blues", "Rock n Roll"}, req.Genres)
}

func TestShowRequestValidation(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(ShowRequest{ArtistID: 1, VenueID: 2, StartTime: time.Now()}))

	errs := fieldErrors(t, v.Struct(ShowRequest{}))
	assert.Contains(t, errs, "artist_id")
	assert.Contains(t, errs, "venue_id")
	assert.Contains(t, errs, "start_time")
}
