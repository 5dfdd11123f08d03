package repository

import (
	"context"
	"fmt"
	"strings"

	"showbook/internal/directory"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

type showRepository struct{}

func NewShowRepository() interfaces.ShowRepository {
	return &showRepository{}
}

// Create relies on the foreign keys to reject unknown artist or venue ids.
func (r *showRepository) Create(ctx context.Context, q interfaces.DBTX, show *models.Show) error {
	query := `INSERT INTO shows (artist_id, venue_id, start_time)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	err := q.QueryRowContext(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID)
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func (r *showRepository) Exists(ctx context.Context, q interfaces.DBTX, show models.Show) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM shows
			  WHERE artist_id = $1 AND venue_id = $2 AND start_time = $3)`

	var exists bool
	if err := q.QueryRowContext(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(&exists); err != nil {
		return false, fmt.Errorf("check show exists: %w", err)
	}
	return exists, nil
}

// ForVenue lists a venue's shows with the artist side filled in, oldest first.
func (r *showRepository) ForVenue(ctx context.Context, q interfaces.DBTX, venueID int) ([]models.ArtistShow, error) {
	query := `SELECT a.id, a.name, a.image_link, s.start_time
			  FROM shows s
			  JOIN artists a ON a.id = s.artist_id
			  WHERE s.venue_id = $1
			  ORDER BY s.start_time, s.id`

	rows, err := q.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list shows for venue: %w", err)
	}
	defer rows.Close()

	shows := []models.ArtistShow{}
	for rows.Next() {
		var s models.ArtistShow
		if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartsAt); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		s.StartTime = directory.FormatStartTime(s.StartsAt)
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shows: %w", err)
	}
	return shows, nil
}

// ForArtist lists an artist's shows with the venue side filled in, oldest first.
func (r *showRepository) ForArtist(ctx context.Context, q interfaces.DBTX, artistID int) ([]models.VenueShow, error) {
	query := `SELECT v.id, v.name, v.image_link, s.start_time
			  FROM shows s
			  JOIN venues v ON v.id = s.venue_id
			  WHERE s.artist_id = $1
			  ORDER BY s.start_time, s.id`

	rows, err := q.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("list shows for artist: %w", err)
	}
	defer rows.Close()

	shows := []models.VenueShow{}
	for rows.Next() {
		var s models.VenueShow
		if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartsAt); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		s.StartTime = directory.FormatStartTime(s.StartsAt)
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shows: %w", err)
	}
	return shows, nil
}

func (r *showRepository) List(ctx context.Context, q interfaces.DBTX, filter interfaces.ShowFilter) ([]models.ShowListing, error) {
	query := `SELECT s.id, v.id, v.name, a.id, a.name, a.image_link, s.start_time
			  FROM shows s
			  JOIN venues v ON v.id = s.venue_id
			  JOIN artists a ON a.id = s.artist_id`

	var args []interface{}
	var whereClauses []string
	argPos := 1

	if filter.VenueID > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("s.venue_id = $%d", argPos))
		args = append(args, filter.VenueID)
		argPos++
	}

	if filter.ArtistID > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("s.artist_id = $%d", argPos))
		args = append(args, filter.ArtistID)
		argPos++
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY s.start_time, s.id"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var s models.ShowListing
		if err := rows.Scan(&s.ID, &s.VenueID, &s.VenueName, &s.ArtistID, &s.ArtistName,
			&s.ArtistImageLink, &s.StartsAt); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		s.StartTime = directory.FormatStartTime(s.StartsAt)
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shows: %w", err)
	}
	return shows, nil
}
