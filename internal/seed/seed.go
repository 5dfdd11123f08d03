// Package seed loads reference venues, artists and shows from YAML. Running
// it twice changes nothing: entities are matched by name and shows by
// (venue, artist, start time).
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"showbook/internal/interfaces"
	"showbook/internal/models"
	"showbook/internal/repository"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Venues  []VenueFixture  `yaml:"venues"`
	Artists []ArtistFixture `yaml:"artists"`
	Shows   []ShowFixture   `yaml:"shows"`
}

type VenueFixture struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
	Genres             []string `yaml:"genres"`
}

type ArtistFixture struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
	Genres             []string `yaml:"genres"`
}

// ShowFixture references its venue and artist by name.
type ShowFixture struct {
	Venue     string    `yaml:"venue"`
	Artist    string    `yaml:"artist"`
	StartTime time.Time `yaml:"start_time"`
}

func (f VenueFixture) request() models.VenueRequest {
	return models.VenueRequest{
		Name: f.Name, City: f.City, State: f.State, Address: f.Address, Phone: f.Phone,
		ImageLink: f.ImageLink, FacebookLink: f.FacebookLink, Website: f.Website,
		SeekingTalent: f.SeekingTalent, SeekingDescription: f.SeekingDescription, Genres: f.Genres,
	}
}

func (f ArtistFixture) request() models.ArtistRequest {
	return models.ArtistRequest{
		Name: f.Name, City: f.City, State: f.State, Phone: f.Phone,
		ImageLink: f.ImageLink, FacebookLink: f.FacebookLink, Website: f.Website,
		SeekingVenue: f.SeekingVenue, SeekingDescription: f.SeekingDescription, Genres: f.Genres,
	}
}

// Load decodes fixtures, rejecting unknown keys.
func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &f, nil
}

// LoadFile reads fixtures from path, or the built-in set when path is empty.
func LoadFile(path string) (*Fixtures, error) {
	if path == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Default returns the reference data set shipped with the binary.
func Default() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(defaultFixtures, &f); err != nil {
		return nil, fmt.Errorf("decode default fixtures: %w", err)
	}
	return &f, nil
}

// Result counts what a run actually inserted.
type Result struct {
	VenuesCreated  int
	ArtistsCreated int
	ShowsCreated   int
}

type Seeder struct {
	db       *sql.DB
	venues   interfaces.VenueRepository
	artists  interfaces.ArtistRepository
	shows    interfaces.ShowRepository
	genres   interfaces.GenreRepository
	validate *validator.Validate
	cache    interfaces.ArtistListCache
}

type Option func(*Seeder)

// WithArtistCache makes a run that creates artists drop the cached list.
func WithArtistCache(c interfaces.ArtistListCache) Option {
	return func(s *Seeder) {
		if c != nil {
			s.cache = c
		}
	}
}

func NewSeeder(db *sql.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:       db,
		venues:   repository.NewVenueRepository(),
		artists:  repository.NewArtistRepository(),
		shows:    repository.NewShowRepository(),
		genres:   repository.NewGenreRepository(),
		validate: models.NewValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run applies the fixtures in a single transaction.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (Result, error) {
	var res Result
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		venueIDs := make(map[string]int, len(f.Venues))
		for _, vf := range f.Venues {
			id, created, err := s.ensureVenue(ctx, tx, vf)
			if err != nil {
				return err
			}
			venueIDs[strings.TrimSpace(vf.Name)] = id
			if created {
				res.VenuesCreated++
			}
		}

		artistIDs := make(map[string]int, len(f.Artists))
		for _, af := range f.Artists {
			id, created, err := s.ensureArtist(ctx, tx, af)
			if err != nil {
				return err
			}
			artistIDs[strings.TrimSpace(af.Name)] = id
			if created {
				res.ArtistsCreated++
			}
		}

		for _, sf := range f.Shows {
			created, err := s.ensureShow(ctx, tx, sf, venueIDs, artistIDs)
			if err != nil {
				return err
			}
			if created {
				res.ShowsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if res.ArtistsCreated > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logrus.WithError(err).Warn("artist cache invalidate failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"venues":  res.VenuesCreated,
		"artists": res.ArtistsCreated,
		"shows":   res.ShowsCreated,
	}).Info("seed complete")
	return res, nil
}

func (s *Seeder) ensureVenue(ctx context.Context, tx *sql.Tx, vf VenueFixture) (int, bool, error) {
	req := vf.request()
	req.Trim()

	existing, err := s.venues.GetByName(ctx, tx, req.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return 0, false, err
	}

	if err := s.validate.Struct(req); err != nil {
		return 0, false, fmt.Errorf("venue %q: %w", vf.Name, err)
	}
	venue := req.Venue()
	if err := s.venues.Create(ctx, tx, venue); err != nil {
		return 0, false, err
	}
	if err := s.genres.ReplaceForVenue(ctx, tx, venue.ID, venue.Genres); err != nil {
		return 0, false, err
	}
	return venue.ID, true, nil
}

func (s *Seeder) ensureArtist(ctx context.Context, tx *sql.Tx, af ArtistFixture) (int, bool, error) {
	req := af.request()
	req.Trim()

	existing, err := s.artists.GetByName(ctx, tx, req.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return 0, false, err
	}

	if err := s.validate.Struct(req); err != nil {
		return 0, false, fmt.Errorf("artist %q: %w", af.Name, err)
	}
	artist := req.Artist()
	if err := s.artists.Create(ctx, tx, artist); err != nil {
		return 0, false, err
	}
	if err := s.genres.ReplaceForArtist(ctx, tx, artist.ID, artist.Genres); err != nil {
		return 0, false, err
	}
	return artist.ID, true, nil
}

// ensureShow resolves names against this run first, then the database.
func (s *Seeder) ensureShow(ctx context.Context, tx *sql.Tx, sf ShowFixture, venueIDs, artistIDs map[string]int) (bool, error) {
	venueName, artistName := strings.TrimSpace(sf.Venue), strings.TrimSpace(sf.Artist)

	venueID, ok := venueIDs[venueName]
	if !ok {
		venue, err := s.venues.GetByName(ctx, tx, venueName)
		if err != nil {
			return false, fmt.Errorf("show at %q: %w", venueName, err)
		}
		venueID = venue.ID
	}
	artistID, ok := artistIDs[artistName]
	if !ok {
		artist, err := s.artists.GetByName(ctx, tx, artistName)
		if err != nil {
			return false, fmt.Errorf("show by %q: %w", artistName, err)
		}
		artistID = artist.ID
	}

	show := models.Show{VenueID: venueID, ArtistID: artistID, StartTime: sf.StartTime}
	exists, err := s.shows.Exists(ctx, tx, show)
	if err != nil || exists {
		return false, err
	}
	if err := s.shows.Create(ctx, tx, &show); err != nil {
		return false, err
	}
	return true, nil
}
