package services

import (
	"context"
	"database/sql"
	"time"

	"showbook/internal/directory"
	"showbook/internal/interfaces"
	"showbook/internal/models"
	"showbook/internal/repository"
)

func (d *Directory) ListVenuesByLocation(ctx context.Context) ([]models.VenueLocation, error) {
	venues, err := d.venues.ListWithUpcoming(ctx, d.db, d.now())
	if err != nil {
		return nil, persistenceFailure(err, "Venue", "", "read", 0)
	}
	return directory.GroupByLocation(venues), nil
}

func (d *Directory) SearchVenues(ctx context.Context, term string) (*models.SearchResponse[models.VenueSearchResult], error) {
	results, err := d.venues.Search(ctx, d.db, interfaces.SearchQuery{NameContains: term}, d.now())
	if err != nil {
		return nil, persistenceFailure(err, "Venue", "", "read", 0)
	}
	return &models.SearchResponse[models.VenueSearchResult]{Count: len(results), Data: results}, nil
}

func (d *Directory) GetVenue(ctx context.Context, id int) (*models.VenueDetail, error) {
	now := d.now()

	venue, err := d.venues.GetByID(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Venue", "", "read", id)
	}
	shows, err := d.shows.ForVenue(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Venue", "", "read", id)
	}

	past, upcoming := directory.Partition(shows, func(s models.ArtistShow) time.Time { return s.StartsAt }, now)
	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetVenueForm returns the stored venue with the phone formatted for display.
func (d *Directory) GetVenueForm(ctx context.Context, id int) (*models.Venue, error) {
	venue, err := d.venues.GetByID(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Venue", "", "read", id)
	}
	venue.Phone = models.DisplayPhone(venue.Phone)
	return venue, nil
}

func (d *Directory) CreateVenue(ctx context.Context, req models.VenueRequest) (*models.Venue, error) {
	req.Trim()
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	venue := req.Venue()
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		if err := d.venues.Create(ctx, tx, venue); err != nil {
			return err
		}
		return d.genres.ReplaceForVenue(ctx, tx, venue.ID, venue.Genres)
	})
	if err != nil {
		return nil, persistenceFailure(err, "Venue", req.Name, "create", 0)
	}

	d.publish(ctx, EventVenueCreated, EntityEvent{ID: venue.ID, Name: venue.Name, OccurredAt: d.now().UTC()})
	return venue, nil
}

// EditVenue overwrites every field and replaces the genre set.
func (d *Directory) EditVenue(ctx context.Context, id int, req models.VenueRequest) (*models.Venue, error) {
	req.Trim()
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	venue := req.Venue()
	venue.ID = id
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		if err := d.venues.Update(ctx, tx, venue); err != nil {
			return err
		}
		return d.genres.ReplaceForVenue(ctx, tx, id, venue.Genres)
	})
	if err != nil {
		return nil, persistenceFailure(err, "Venue", req.Name, "update", id)
	}

	return venue, nil
}

// DeleteVenue removes the venue and, by cascade, its shows.
func (d *Directory) DeleteVenue(ctx context.Context, id int) error {
	var name string
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		venue, err := d.venues.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		name = venue.Name
		return d.venues.Delete(ctx, tx, id)
	})
	if err != nil {
		return persistenceFailure(err, "Venue", name, "delete", id)
	}

	d.publish(ctx, EventVenueDeleted, EntityEvent{ID: id, Name: name, OccurredAt: d.now().UTC()})
	return nil
}

// ListShowsForVenue returns the venue's shows oldest first. An unknown venue
// has no shows.
func (d *Directory) ListShowsForVenue(ctx context.Context, venueID int) ([]models.ArtistShow, error) {
	shows, err := d.shows.ForVenue(ctx, d.db, venueID)
	if err != nil {
		return nil, persistenceFailure(err, "Show", "", "read", venueID)
	}
	return shows, nil
}
