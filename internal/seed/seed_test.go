package seed

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbook/internal/models"
)

func TestDefaultFixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Len(t, f.Venues, 3)
	assert.Len(t, f.Artists, 3)
	require.Len(t, f.Shows, 5)
	assert.Equal(t, "The Musical Hop", f.Shows[0].Venue)
	assert.Equal(t, "Guns N Petals", f.Shows[0].Artist)
	assert.True(t, f.Shows[0].StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("venues:\n  - name: X\n    capacity: 300\n"))
	assert.Error(t, err)
}

func TestLoadEmptyDocument(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Venues)
}

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "image_link", "facebook_link",
	"website", "seeking_talent", "seeking_description", "genres", "created_at", "updated_at",
}

var artistCols = []string{
	"id", "name", "city", "state", "phone", "image_link", "facebook_link",
	"website", "seeking_venue", "seeking_description", "genres", "created_at", "updated_at",
}

func TestRunCreatesOnlyWhatIsMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	f := &Fixtures{
		Venues: []VenueFixture{{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave"}},
		Artists: []ArtistFixture{{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}},
		Shows: []ShowFixture{
			{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: start},
			{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: start.AddDate(0, 0, 7)},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.name = $1")).
		WithArgs("Park Square Live Music & Coffee").
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA",
			"34 Whiskey Moore Ave", "", "", "", "", false, "", "{}", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists a WHERE a.name = $1")).
		WithArgs("The Wild Sax Band").
		WillReturnRows(sqlmock.NewRows(artistCols))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO artists")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(6, now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM artist_genres")).WithArgs(6).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres (name)")).WithArgs("Jazz").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Jazz"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO artist_genres")).WithArgs(6, 1).WillReturnResult(sqlmock.NewResult(0, 1))

	// first show already exists, second is new
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM shows")).WithArgs(6, 3, start).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM shows")).WithArgs(6, 3, start.AddDate(0, 0, 7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shows")).WithArgs(6, 3, start.AddDate(0, 0, 7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	res, err := NewSeeder(db).Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, Result{VenuesCreated: 0, ArtistsCreated: 1, ShowsCreated: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRollsBackOnUnknownVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	f := &Fixtures{Shows: []ShowFixture{{Venue: "Nowhere", Artist: "Nobody", StartTime: time.Now()}}}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.name = $1")).WithArgs("Nowhere").
		WillReturnRows(sqlmock.NewRows(venueCols))
	mock.ExpectRollback()

	_, err = NewSeeder(db).Run(context.Background(), f)
	assert.ErrorContains(t, err, "Nowhere")
	assert.NoError(t, mock.ExpectationsWereMet())
}

type countingCache struct{ invalidations int }

func (c *countingCache) Get(context.Context) ([]models.ArtistSummary, bool, error) {
	return nil, false, nil
}
func (c *countingCache) Set(context.Context, []models.ArtistSummary) error { return nil }
func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

func TestRunMatchesPaddedNamesByTrimmedValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	f := &Fixtures{
		Venues:  []VenueFixture{{Name: "  The Dueling Pianos Bar ", City: "New York", State: "NY", Address: "335 Delancey Street"}},
		Artists: []ArtistFixture{{Name: " Matt Quevedo  ", City: "New York", State: "NY"}},
		Shows:   []ShowFixture{{Venue: "The Dueling Pianos Bar ", Artist: "  Matt Quevedo", StartTime: start}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.name = $1")).
		WithArgs("The Dueling Pianos Bar").
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(2, "The Dueling Pianos Bar", "New York", "NY",
			"335 Delancey Street", "", "", "", "", false, "", "{}", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists a WHERE a.name = $1")).
		WithArgs("Matt Quevedo").
		WillReturnRows(sqlmock.NewRows(artistCols).AddRow(5, "Matt Quevedo", "New York", "NY",
			"", "", "", "", false, "", "{}", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM shows")).WithArgs(5, 2, start).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	cache := &countingCache{}
	res, err := NewSeeder(db, WithArtistCache(cache)).Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Zero(t, cache.invalidations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInvalidatesArtistCacheWhenArtistsAreCreated(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &Fixtures{Artists: []ArtistFixture{{Name: "Matt Quevedo", City: "New York", State: "NY"}}}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists a WHERE a.name = $1")).
		WithArgs("Matt Quevedo").
		WillReturnRows(sqlmock.NewRows(artistCols))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO artists")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM artist_genres")).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	cache := &countingCache{}
	res, err := NewSeeder(db, WithArtistCache(cache)).Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ArtistsCreated)
	assert.Equal(t, 1, cache.invalidations)
	assert.NoError(t, mock.ExpectationsWereMet())
}
