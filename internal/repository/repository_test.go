package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var (
	created = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now     = time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
)

func venueRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "city", "state", "address", "phone", "image_link", "facebook_link",
		"website", "seeking_talent", "seeking_description", "genres", "created_at", "updated_at",
	})
}

func TestVenueRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Phone: "1231231234"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO venues")).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "1231231234", "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, created, created))

	require.NoError(t, repo.Create(context.Background(), db, venue))
	assert.Equal(t, 7, venue.ID)
	assert.Equal(t, created, venue.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepositoryGetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.id = $1")).
		WithArgs(1).
		WillReturnRows(venueRow().AddRow(1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street",
			"1231231234", "", "", "", true, "Looking for jazz", "{Jazz,Reggae}", created, created))

	venue, err := repo.GetByID(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepositoryGetByIDNoGenres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.id = $1")).
		WithArgs(2).
		WillReturnRows(venueRow().AddRow(2, "Blue Note", "New York", "NY", "131 W 3rd St",
			"", "", "", "", false, "", "{}", created, created))

	venue, err := repo.GetByID(context.Background(), db, 2)
	require.NoError(t, err)
	assert.NotNil(t, venue.Genres)
	assert.Empty(t, venue.Genres)
}

func TestVenueRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v WHERE v.id = $1")).
		WithArgs(99).
		WillReturnRows(venueRow())

	_, err := repo.GetByID(context.Background(), db, 99)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestVenueRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE venues")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	err := repo.Update(context.Background(), db, &models.Venue{ID: 42, Name: "Gone"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestVenueRepositoryDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), db, 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), db, 3), interfaces.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepositoryListWithUpcoming(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v ORDER BY v.id")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 0).
			AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA", 1))

	venues, err := repo.ListWithUpcoming(context.Background(), db, now)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, 1, venues[1].NumUpcomingShows)
	assert.Equal(t, "CA", venues[1].State)
}

func TestVenueRepositorySearchEscapesPattern(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVenueRepository()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE v.name ILIKE $1")).
		WithArgs(`%100\%%`, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "phone", "image_link", "genres", "count"}).
			AddRow(5, "100% Jazz", "Austin", "TX", "", "", nil, 2))

	results, err := repo.Search(context.Background(), db, interfaces.SearchQuery{NameContains: " 100% "}, now)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].NumUpcomingShows)
	assert.NotNil(t, results[0].Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepositoryListByName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepository()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM artists ORDER BY name, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(4, "Guns N Petals").
			AddRow(5, "Matt Quevedo").
			AddRow(6, "The Wild Sax Band"))

	artists, err := repo.ListByName(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, artists, 3)
	assert.Equal(t, "Guns N Petals", artists[0].Name)
}

func TestArtistRepositorySearchEmptyTermMatchesAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepository()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.name ILIKE $1")).
		WithArgs("%%", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count"}).
			AddRow(4, "Guns N Petals", 0).
			AddRow(5, "Matt Quevedo", 1))

	results, err := repo.Search(context.Background(), db, interfaces.SearchQuery{}, now)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestArtistRepositoryGetByNameNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepository()

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists a WHERE a.name = $1")).
		WithArgs("Nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByName(context.Background(), db, "Nobody")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestGenreRepositoryReplaceForVenue(t *testing.T) {
	db, mock := newMock(t)
	repo := NewGenreRepository()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venue_genres WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres (name)")).
		WithArgs("Jazz").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(10, "Jazz"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO venue_genres (venue_id, genre_id)")).
		WithArgs(1, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres (name)")).
		WithArgs("Swing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(11, "Swing"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO venue_genres (venue_id, genre_id)")).
		WithArgs(1, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceForVenue(context.Background(), db, 1, []string{"Jazz", "Swing"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreRepositoryReplaceWithEmptyListOnlyClears(t *testing.T) {
	db, mock := newMock(t)
	repo := NewGenreRepository()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM artist_genres WHERE artist_id = $1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ReplaceForArtist(context.Background(), db, 4, []string{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryForVenueFormatsStartTime(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepository()

	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.venue_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_link", "start_time"}).
			AddRow(4, "Guns N Petals", "https://example.com/gnp.jpg", start))

	shows, err := repo.ForVenue(context.Background(), db, 1)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", shows[0].StartTime)
	assert.Equal(t, start, shows[0].StartsAt)
}

func TestShowRepositoryListFilters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepository()

	cols := []string{"id", "venue_id", "venue_name", "artist_id", "artist_name", "image_link", "start_time"}

	mock.ExpectQuery(`JOIN artists a ON a.id = s.artist_id ORDER BY`).
		WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.venue_id = $1 AND s.artist_id = $2")).
		WithArgs(1, 4).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 1, "The Musical Hop", 4, "Guns N Petals", "", now))

	all, err := repo.List(context.Background(), db, interfaces.ShowFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	filtered, err := repo.List(context.Background(), db, interfaces.ShowFilter{VenueID: 1, ArtistID: 4})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "The Musical Hop", filtered[0].VenueName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryCreateForeignKeyViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepository()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shows")).
		WithArgs(999, 1, now).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.Create(context.Background(), db, &models.Show{ArtistID: 999, VenueID: 1, StartTime: now})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestShowRepositoryExists(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepository()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM shows")).
		WithArgs(4, 1, now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), db, models.Show{ArtistID: 4, VenueID: 1, StartTime: now})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shows").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(context.Background(), "DELETE FROM shows")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(tx *sql.Tx) error { panic("genre insert blew up") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniqueViolationThroughWrapping(t *testing.T) {
	err := fmt.Errorf("resolve genre: %w", &pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}
