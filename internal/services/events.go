package services

import (
	"context"
	"time"
)

// Routing keys on the showbook.events exchange.
const (
	EventVenueCreated  = "venue.created"
	EventVenueDeleted  = "venue.deleted"
	EventArtistCreated = "artist.created"
	EventArtistDeleted = "artist.deleted"
	EventShowScheduled = "show.scheduled"
)

// EntityEvent is published when a venue or artist is created or deleted.
type EntityEvent struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ShowScheduledEvent carries enough to notify followers without a lookup.
type ShowScheduledEvent struct {
	ShowID     int       `json:"show_id"`
	VenueID    int       `json:"venue_id"`
	ArtistID   int       `json:"artist_id"`
	StartTime  time.Time `json:"start_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
