package models

import "time"

type Show struct {
	ID        int       `json:"id" db:"id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
}

type ShowRequest struct {
	ArtistID  int       `json:"artist_id" validate:"required,gt=0"`
	VenueID   int       `json:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// ArtistShow is a show seen from the venue side.
type ArtistShow struct {
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
	StartsAt        time.Time `json:"starts_at"`
}

// VenueShow is a show seen from the artist side.
type VenueShow struct {
	VenueID        int       `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      string    `json:"start_time"`
	StartsAt       time.Time `json:"starts_at"`
}

type ShowListing struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
	StartsAt        time.Time `json:"starts_at"`
}

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// SearchResponse is the {count, data} envelope of the search operations.
type SearchResponse[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}
