package models

import (
	"strings"
	"time"
)

type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Address            string    `json:"address" db:"address"`
	Phone              string    `json:"phone" db:"phone"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// VenueRequest is the body of both create and edit. Edits always resupply
// every field; there is no partial update.
type VenueRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,max=120"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
	Genres             []string `json:"genres" validate:"dive,required,max=120"`
}

// Trim strips surrounding whitespace from every text field and reduces the
// genres to a sorted set.
func (r *VenueRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.Website = strings.TrimSpace(r.Website)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
	r.Genres = genreSet(r.Genres)
}

// Venue builds the entity to persist; the phone is stored digits-only.
func (r *VenueRequest) Venue() *Venue {
	return &Venue{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              NormalizePhone(r.Phone),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
		Genres:             r.Genres,
	}
}

// VenueSummary is one entry of a location group.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocatedVenue is a venue row with the fields needed for grouping.
type LocatedVenue struct {
	VenueSummary
	City  string
	State string
}

// VenueLocation groups the venues of one (city, state) pair.
type VenueLocation struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResult struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Phone            string   `json:"phone"`
	ImageLink        string   `json:"image_link"`
	Genres           []string `json:"genres"`
	NumUpcomingShows int      `json:"num_upcoming_shows"`
}

// VenueDetail is a venue with its shows split around a single "now".
type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
