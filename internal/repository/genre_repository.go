package repository

import (
	"context"
	"fmt"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

// genreLink names one of the two join tables between an owner and genres.
type genreLink struct {
	table       string
	ownerColumn string
}

var (
	venueGenres  = genreLink{table: "venue_genres", ownerColumn: "venue_id"}
	artistGenres = genreLink{table: "artist_genres", ownerColumn: "artist_id"}
)

type genreRepository struct{}

func NewGenreRepository() interfaces.GenreRepository {
	return &genreRepository{}
}

// Resolve upserts by name. The no-op update makes RETURNING yield the
// existing row when another transaction created it first.
func (r *genreRepository) Resolve(ctx context.Context, q interfaces.DBTX, name string) (*models.Genre, error) {
	query := `INSERT INTO genres (name) VALUES ($1)
			  ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			  RETURNING id, name`

	var genre models.Genre
	if err := q.QueryRowContext(ctx, query, name).Scan(&genre.ID, &genre.Name); err != nil {
		return nil, fmt.Errorf("resolve genre %q: %w", name, err)
	}
	return &genre, nil
}

func (r *genreRepository) List(ctx context.Context, q interfaces.DBTX) ([]models.Genre, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) ReplaceForVenue(ctx context.Context, q interfaces.DBTX, venueID int, names []string) error {
	return r.replace(ctx, q, venueGenres, venueID, names)
}

func (r *genreRepository) ReplaceForArtist(ctx context.Context, q interfaces.DBTX, artistID int, names []string) error {
	return r.replace(ctx, q, artistGenres, artistID, names)
}

// replace clears every association of the owner and re-attaches the given
// names one at a time, creating genres on first use.
func (r *genreRepository) replace(ctx context.Context, q interfaces.DBTX, link genreLink, ownerID int, names []string) error {
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, link.table, link.ownerColumn)
	if _, err := q.ExecContext(ctx, clearQuery, ownerID); err != nil {
		return fmt.Errorf("clear %s: %w", link.table, err)
	}

	attach := fmt.Sprintf(`INSERT INTO %s (%s, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, link.table, link.ownerColumn)
	for _, name := range names {
		genre, err := r.Resolve(ctx, q, name)
		if err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx, attach, ownerID, genre.ID); err != nil {
			return fmt.Errorf("attach genre %q: %w", name, err)
		}
	}
	return nil
}
