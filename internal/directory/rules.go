// Package directory holds the derived-view rules of the booking directory:
// upcoming/past classification, location grouping, search patterns and
// display formatting. Everything here is pure; callers pass in "now".
package directory

import (
	"sort"
	"strings"
	"time"

	"showbook/internal/models"
)

// StartTimeLayout renders show times in the medium form, e.g.
// "Tue 05, 21, 2019 9:30PM".
const StartTimeLayout = "Mon 01, 02, 2006 3:04PM"

// IsUpcoming reports whether a show starting at start is still ahead of now.
// A show starting exactly at now is past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// Partition splits shows into past and upcoming around a single now,
// preserving input order in both halves.
func Partition[T any](shows []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = []T{}
	upcoming = []T{}
	for _, s := range shows {
		if IsUpcoming(startOf(s), now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// GroupByLocation partitions venues by (city, state). Groups are ordered by
// state, then city; venues keep their input order inside a group.
func GroupByLocation(venues []models.LocatedVenue) []models.VenueLocation {
	type key struct{ city, state string }

	index := make(map[key]int)
	groups := []models.VenueLocation{}
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.VenueLocation{City: v.City, State: v.State, Venues: []models.VenueSummary{}})
		}
		groups[i].Venues = append(groups[i].Venues, v.VenueSummary)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].State != groups[j].State {
			return groups[i].State < groups[j].State
		}
		return groups[i].City < groups[j].City
	})
	return groups
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a search term into an ILIKE pattern that matches the
// term anywhere in the name. Wildcards typed by the user match literally.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

// FormatStartTime renders a show start time for listings.
func FormatStartTime(t time.Time) string {
	return t.Format(StartTimeLayout)
}
