package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"showbook/internal/directory"
	"showbook/internal/interfaces"
	"showbook/internal/models"
	"showbook/internal/repository"
)

// ListArtists returns every artist ordered by name, served from the cache
// when one is configured. Cache errors degrade to a database read.
func (d *Directory) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	if d.cache != nil {
		artists, ok, err := d.cache.Get(ctx)
		if err != nil {
			logrus.WithError(err).Warn("artist cache read failed")
		} else if ok {
			return artists, nil
		}
	}

	artists, err := d.artists.ListByName(ctx, d.db)
	if err != nil {
		return nil, persistenceFailure(err, "Artist", "", "read", 0)
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, artists); err != nil {
			logrus.WithError(err).Warn("artist cache write failed")
		}
	}
	return artists, nil
}

func (d *Directory) SearchArtists(ctx context.Context, term string) (*models.SearchResponse[models.ArtistSearchResult], error) {
	results, err := d.artists.Search(ctx, d.db, interfaces.SearchQuery{NameContains: term}, d.now())
	if err != nil {
		return nil, persistenceFailure(err, "Artist", "", "read", 0)
	}
	return &models.SearchResponse[models.ArtistSearchResult]{Count: len(results), Data: results}, nil
}

func (d *Directory) GetArtist(ctx context.Context, id int) (*models.ArtistDetail, error) {
	now := d.now()

	artist, err := d.artists.GetByID(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Artist", "", "read", id)
	}
	shows, err := d.shows.ForArtist(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Artist", "", "read", id)
	}

	past, upcoming := directory.Partition(shows, func(s models.VenueShow) time.Time { return s.StartsAt }, now)
	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (d *Directory) GetArtistForm(ctx context.Context, id int) (*models.Artist, error) {
	artist, err := d.artists.GetByID(ctx, d.db, id)
	if err != nil {
		return nil, persistenceFailure(err, "Artist", "", "read", id)
	}
	artist.Phone = models.DisplayPhone(artist.Phone)
	return artist, nil
}

func (d *Directory) CreateArtist(ctx context.Context, req models.ArtistRequest) (*models.Artist, error) {
	req.Trim()
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	artist := req.Artist()
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		if err := d.artists.Create(ctx, tx, artist); err != nil {
			return err
		}
		return d.genres.ReplaceForArtist(ctx, tx, artist.ID, artist.Genres)
	})
	if err != nil {
		return nil, persistenceFailure(err, "Artist", req.Name, "create", 0)
	}

	d.invalidateArtists(ctx)
	d.publish(ctx, EventArtistCreated, EntityEvent{ID: artist.ID, Name: artist.Name, OccurredAt: d.now().UTC()})
	return artist, nil
}

func (d *Directory) EditArtist(ctx context.Context, id int, req models.ArtistRequest) (*models.Artist, error) {
	req.Trim()
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	artist := req.Artist()
	artist.ID = id
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		if err := d.artists.Update(ctx, tx, artist); err != nil {
			return err
		}
		return d.genres.ReplaceForArtist(ctx, tx, id, artist.Genres)
	})
	if err != nil {
		return nil, persistenceFailure(err, "Artist", req.Name, "update", id)
	}

	d.invalidateArtists(ctx)
	return artist, nil
}

func (d *Directory) DeleteArtist(ctx context.Context, id int) error {
	var name string
	err := repository.WithTx(ctx, d.db, func(tx *sql.Tx) error {
		artist, err := d.artists.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		name = artist.Name
		return d.artists.Delete(ctx, tx, id)
	})
	if err != nil {
		return persistenceFailure(err, "Artist", name, "delete", id)
	}

	d.invalidateArtists(ctx)
	d.publish(ctx, EventArtistDeleted, EntityEvent{ID: id, Name: name, OccurredAt: d.now().UTC()})
	return nil
}

func (d *Directory) invalidateArtists(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("artist cache invalidation failed")
	}
}
