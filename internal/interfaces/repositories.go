package interfaces

import (
	"context"
	"database/sql"
	"time"

	"showbook/internal/models"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx. Every repository method
// takes one explicitly so callers decide the transaction scope.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SearchQuery is a case-insensitive substring match on name.
type SearchQuery struct {
	NameContains string
}

// ShowFilter narrows show listings; zero values mean "any".
type ShowFilter struct {
	VenueID  int
	ArtistID int
}

type GenreRepository interface {
	// Resolve returns the genre with this exact name, creating it if needed.
	Resolve(ctx context.Context, q DBTX, name string) (*models.Genre, error)
	List(ctx context.Context, q DBTX) ([]models.Genre, error)
	ReplaceForVenue(ctx context.Context, q DBTX, venueID int, names []string) error
	ReplaceForArtist(ctx context.Context, q DBTX, artistID int, names []string) error
}

type VenueRepository interface {
	Create(ctx context.Context, q DBTX, venue *models.Venue) error
	GetByID(ctx context.Context, q DBTX, id int) (*models.Venue, error)
	GetByName(ctx context.Context, q DBTX, name string) (*models.Venue, error)
	Update(ctx context.Context, q DBTX, venue *models.Venue) error
	Delete(ctx context.Context, q DBTX, id int) error
	ListWithUpcoming(ctx context.Context, q DBTX, now time.Time) ([]models.LocatedVenue, error)
	Search(ctx context.Context, q DBTX, query SearchQuery, now time.Time) ([]models.VenueSearchResult, error)
}

type ArtistRepository interface {
	Create(ctx context.Context, q DBTX, artist *models.Artist) error
	GetByID(ctx context.Context, q DBTX, id int) (*models.Artist, error)
	GetByName(ctx context.Context, q DBTX, name string) (*models.Artist, error)
	Update(ctx context.Context, q DBTX, artist *models.Artist) error
	Delete(ctx context.Context, q DBTX, id int) error
	ListByName(ctx context.Context, q DBTX) ([]models.ArtistSummary, error)
	Search(ctx context.Context, q DBTX, query SearchQuery, now time.Time) ([]models.ArtistSearchResult, error)
}

type ShowRepository interface {
	Create(ctx context.Context, q DBTX, show *models.Show) error
	Exists(ctx context.Context, q DBTX, show models.Show) (bool, error)
	ForVenue(ctx context.Context, q DBTX, venueID int) ([]models.ArtistShow, error)
	ForArtist(ctx context.Context, q DBTX, artistID int) ([]models.VenueShow, error)
	List(ctx context.Context, q DBTX, filter ShowFilter) ([]models.ShowListing, error)
}
