package services

import (
	"context"

	"showbook/internal/interfaces"
	"showbook/internal/models"
)

// CreateShow schedules an artist at a venue. Unknown ids are rejected by the
// foreign keys and reported like any other persistence failure.
func (d *Directory) CreateShow(ctx context.Context, req models.ShowRequest) (*models.Show, error) {
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	show := &models.Show{ArtistID: req.ArtistID, VenueID: req.VenueID, StartTime: req.StartTime}
	if err := d.shows.Create(ctx, d.db, show); err != nil {
		return nil, persistenceFailure(err, "Show", "", "create", 0)
	}

	d.publish(ctx, EventShowScheduled, ShowScheduledEvent{
		ShowID:     show.ID,
		VenueID:    show.VenueID,
		ArtistID:   show.ArtistID,
		StartTime:  show.StartTime,
		OccurredAt: d.now().UTC(),
	})
	return show, nil
}

// ListShows lists shows oldest first, optionally narrowed to a venue and/or
// an artist.
func (d *Directory) ListShows(ctx context.Context, filter interfaces.ShowFilter) ([]models.ShowListing, error) {
	shows, err := d.shows.List(ctx, d.db, filter)
	if err != nil {
		return nil, persistenceFailure(err, "Show", "", "read", 0)
	}
	return shows, nil
}

func (d *Directory) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := d.genres.List(ctx, d.db)
	if err != nil {
		return nil, persistenceFailure(err, "Genre", "", "read", 0)
	}
	return genres, nil
}
