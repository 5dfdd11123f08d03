package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"showbook/internal/directory"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

const venueColumns = `v.id, v.name, v.city, v.state, v.address, v.phone, v.image_link,
	v.facebook_link, v.website, v.seeking_talent, v.seeking_description,
	ARRAY(SELECT g.name FROM genres g JOIN venue_genres vg ON vg.genre_id = g.id
	      WHERE vg.venue_id = v.id ORDER BY g.name) AS genres,
	v.created_at, v.updated_at`

type venueRepository struct{}

func NewVenueRepository() interfaces.VenueRepository {
	return &venueRepository{}
}

func (r *venueRepository) Create(ctx context.Context, q interfaces.DBTX, venue *models.Venue) error {
	query := `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
			  website, seeking_talent, seeking_description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`

	err := q.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
		venue.FacebookLink, venue.Website, venue.SeekingTalent, venue.SeekingDescription,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, q interfaces.DBTX, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.id = $1`

	venue, err := scanVenue(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue %d: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

func (r *venueRepository) GetByName(ctx context.Context, q interfaces.DBTX, name string) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.name = $1 ORDER BY v.id LIMIT 1`

	venue, err := scanVenue(q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue %q: %w", name, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("get venue by name: %w", err)
	}
	return venue, nil
}

func scanVenue(row *sql.Row) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
		pq.Array(&v.Genres), &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return &v, nil
}

// Update overwrites every scalar column; genres are replaced separately.
func (r *venueRepository) Update(ctx context.Context, q interfaces.DBTX, venue *models.Venue) error {
	query := `UPDATE venues
			  SET name = $1, city = $2, state = $3, address = $4, phone = $5, image_link = $6,
			      facebook_link = $7, website = $8, seeking_talent = $9, seeking_description = $10,
			      updated_at = NOW()
			  WHERE id = $11
			  RETURNING created_at, updated_at`

	err := q.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
		venue.FacebookLink, venue.Website, venue.SeekingTalent, venue.SeekingDescription,
		venue.ID,
	).Scan(&venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("venue %d: %w", venue.ID, interfaces.ErrNotFound)
		}
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

// Delete removes the venue; shows and genre links go with it through
// ON DELETE CASCADE.
func (r *venueRepository) Delete(ctx context.Context, q interfaces.DBTX, id int) error {
	result, err := q.ExecContext(ctx, "DELETE FROM venues WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("venue %d: %w", id, interfaces.ErrNotFound)
	}
	return nil
}

func (r *venueRepository) ListWithUpcoming(ctx context.Context, q interfaces.DBTX, now time.Time) ([]models.LocatedVenue, error) {
	query := `SELECT v.id, v.name, v.city, v.state,
			  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $1)
			  FROM venues v ORDER BY v.id`

	rows, err := q.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := []models.LocatedVenue{}
	for rows.Next() {
		var v models.LocatedVenue
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}
	return venues, nil
}

func (r *venueRepository) Search(ctx context.Context, q interfaces.DBTX, sq interfaces.SearchQuery, now time.Time) ([]models.VenueSearchResult, error) {
	query := `SELECT v.id, v.name, v.city, v.state, v.phone, v.image_link,
			  ARRAY(SELECT g.name FROM genres g JOIN venue_genres vg ON vg.genre_id = g.id
			        WHERE vg.venue_id = v.id ORDER BY g.name),
			  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $2)
			  FROM venues v
			  WHERE v.name ILIKE $1
			  ORDER BY v.id`

	rows, err := q.QueryContext(ctx, query, directory.LikePattern(sq.NameContains), now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := []models.VenueSearchResult{}
	for rows.Next() {
		var v models.VenueSearchResult
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Phone, &v.ImageLink,
			pq.Array(&v.Genres), &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		if v.Genres == nil {
			v.Genres = []string{}
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}
	return results, nil
}
