package models

import (
	"sort"
	"strings"
	"time"
)

type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	Website            string    `json:"website" db:"website"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type ArtistRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
	Genres             []string `json:"genres" validate:"dive,required,max=120"`
}

func (r *ArtistRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.Website = strings.TrimSpace(r.Website)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
	r.Genres = genreSet(r.Genres)
}

func (r *ArtistRequest) Artist() *Artist {
	return &Artist{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              NormalizePhone(r.Phone),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
		Genres:             r.Genres,
	}
}

type ArtistSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ArtistSearchResult struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// genreSet trims names, drops repeats and sorts, which is the order genres
// are read back in. The result is never nil.
func genreSet(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
