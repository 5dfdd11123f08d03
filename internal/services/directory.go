// Package services implements the booking directory on top of the
// repositories. Every mutation runs in one transaction; every read takes a
// single "now" snapshot so upcoming/past splits are consistent.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"showbook/internal/interfaces"
	"showbook/internal/models"
	"showbook/internal/repository"
)

// Directory serves the venue, artist and show operations.
type Directory struct {
	db       *sql.DB
	venues   interfaces.VenueRepository
	artists  interfaces.ArtistRepository
	shows    interfaces.ShowRepository
	genres   interfaces.GenreRepository
	cache    interfaces.ArtistListCache
	events   interfaces.EventPublisher
	validate *validator.Validate
	now      func() time.Time
}

var (
	_ interfaces.VenueService  = (*Directory)(nil)
	_ interfaces.ArtistService = (*Directory)(nil)
	_ interfaces.ShowService   = (*Directory)(nil)
)

type Option func(*Directory)

// WithArtistCache enables read-through caching of the artist list.
func WithArtistCache(c interfaces.ArtistListCache) Option {
	return func(d *Directory) {
		if c != nil {
			d.cache = c
		}
	}
}

func WithEventPublisher(p interfaces.EventPublisher) Option {
	return func(d *Directory) {
		if p != nil {
			d.events = p
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) {
		d.now = now
	}
}

func NewDirectory(db *sql.DB, opts ...Option) *Directory {
	d := &Directory{
		db:       db,
		venues:   repository.NewVenueRepository(),
		artists:  repository.NewArtistRepository(),
		shows:    repository.NewShowRepository(),
		genres:   repository.NewGenreRepository(),
		events:   NoopPublisher{},
		validate: models.NewValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// validationError converts validator output into the field map clients see.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &interfaces.ValidationError{Fields: map[string]string{"request": err.Error()}}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return &interfaces.ValidationError{Fields: fields}
}

// fieldPath drops the struct name: "VenueRequest.genres[1]" -> "genres[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Invalid URL."
	case "phone":
		return "Invalid phone number."
	case "max":
		return "Field cannot be longer than " + fe.Param() + " characters."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// persistenceFailure logs the cause and wraps it in the user-facing error.
// Not-found passes through untouched.
func persistenceFailure(err error, entity, name, op string, id int) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return err
	}
	var verr *interfaces.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	fields := logrus.Fields{
		"entity": entity,
		"op":     op,
		"id":     id,
	}
	if v := violation(err); v != "" {
		fields["violation"] = v
	}
	logrus.WithFields(fields).WithError(err).Error("directory operation failed")
	return &interfaces.PersistenceError{Entity: entity, Name: name, Op: op, Err: err}
}

// violation names the constraint class behind a Postgres error, if any.
func violation(err error) string {
	switch {
	case repository.IsForeignKeyViolation(err):
		return "foreign_key"
	case repository.IsUniqueViolation(err):
		return "unique"
	}
	return ""
}

// publish announces a committed change. Failures never reach the caller.
func (d *Directory) publish(ctx context.Context, routingKey string, payload any) {
	if err := d.events.Publish(ctx, routingKey, payload); err != nil {
		logrus.WithField("routing_key", routingKey).WithError(err).Warn("event publish failed")
	}
}
