package interfaces

import (
	"context"
	"io"

	"showbook/internal/models"
)

// VenueService is what the venue handlers need from the directory.
type VenueService interface {
	ListVenuesByLocation(ctx context.Context) ([]models.VenueLocation, error)
	SearchVenues(ctx context.Context, term string) (*models.SearchResponse[models.VenueSearchResult], error)
	GetVenue(ctx context.Context, id int) (*models.VenueDetail, error)
	GetVenueForm(ctx context.Context, id int) (*models.Venue, error)
	CreateVenue(ctx context.Context, req models.VenueRequest) (*models.Venue, error)
	EditVenue(ctx context.Context, id int, req models.VenueRequest) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int) error
	ListShowsForVenue(ctx context.Context, venueID int) ([]models.ArtistShow, error)
}

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (*models.SearchResponse[models.ArtistSearchResult], error)
	GetArtist(ctx context.Context, id int) (*models.ArtistDetail, error)
	GetArtistForm(ctx context.Context, id int) (*models.Artist, error)
	CreateArtist(ctx context.Context, req models.ArtistRequest) (*models.Artist, error)
	EditArtist(ctx context.Context, id int, req models.ArtistRequest) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int) error
}

type ShowService interface {
	CreateShow(ctx context.Context, req models.ShowRequest) (*models.Show, error)
	ListShows(ctx context.Context, filter ShowFilter) ([]models.ShowListing, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

// ArtistListCache holds the name-ordered artist list. A miss is reported
// with ok=false and a nil error.
type ArtistListCache interface {
	Get(ctx context.Context) (artists []models.ArtistSummary, ok bool, err error)
	Set(ctx context.Context, artists []models.ArtistSummary) error
	Invalidate(ctx context.Context) error
}

// EventPublisher announces committed directory changes.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// ImageStore keeps uploaded venue and artist images and returns their
// public URL.
type ImageStore interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
