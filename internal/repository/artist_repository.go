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

const artistColumns = `a.id, a.name, a.city, a.state, a.phone, a.image_link,
	a.facebook_link, a.website, a.seeking_venue, a.seeking_description,
	ARRAY(SELECT g.name FROM genres g JOIN artist_genres ag ON ag.genre_id = g.id
	      WHERE ag.artist_id = a.id ORDER BY g.name) AS genres,
	a.created_at, a.updated_at`

type artistRepository struct{}

func NewArtistRepository() interfaces.ArtistRepository {
	return &artistRepository{}
}

func (r *artistRepository) Create(ctx context.Context, q interfaces.DBTX, artist *models.Artist) error {
	query := `INSERT INTO artists (name, city, state, phone, image_link, facebook_link,
			  website, seeking_venue, seeking_description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`

	err := q.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.ImageLink,
		artist.FacebookLink, artist.Website, artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, q interfaces.DBTX, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.id = $1`

	artist, err := scanArtist(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("artist %d: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return artist, nil
}

func (r *artistRepository) GetByName(ctx context.Context, q interfaces.DBTX, name string) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.name = $1 ORDER BY a.id LIMIT 1`

	artist, err := scanArtist(q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("artist %q: %w", name, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("get artist by name: %w", err)
	}
	return artist, nil
}

func scanArtist(row *sql.Row) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
		pq.Array(&a.Genres), &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return &a, nil
}

func (r *artistRepository) Update(ctx context.Context, q interfaces.DBTX, artist *models.Artist) error {
	query := `UPDATE artists
			  SET name = $1, city = $2, state = $3, phone = $4, image_link = $5,
			      facebook_link = $6, website = $7, seeking_venue = $8, seeking_description = $9,
			      updated_at = NOW()
			  WHERE id = $10
			  RETURNING created_at, updated_at`

	err := q.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.ImageLink,
		artist.FacebookLink, artist.Website, artist.SeekingVenue, artist.SeekingDescription,
		artist.ID,
	).Scan(&artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("artist %d: %w", artist.ID, interfaces.ErrNotFound)
		}
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, q interfaces.DBTX, id int) error {
	result, err := q.ExecContext(ctx, "DELETE FROM artists WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("artist %d: %w", id, interfaces.ErrNotFound)
	}
	return nil
}

func (r *artistRepository) ListByName(ctx context.Context, q interfaces.DBTX) ([]models.ArtistSummary, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) Search(ctx context.Context, q interfaces.DBTX, sq interfaces.SearchQuery, now time.Time) ([]models.ArtistSearchResult, error) {
	query := `SELECT a.id, a.name,
			  (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > $2)
			  FROM artists a
			  WHERE a.name ILIKE $1
			  ORDER BY a.id`

	rows, err := q.QueryContext(ctx, query, directory.LikePattern(sq.NameContains), now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := []models.ArtistSearchResult{}
	for rows.Next() {
		var a models.ArtistSearchResult
		if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}
	return results, nil
}
