package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbook/internal/models"
)

var now = time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

func TestIsUpcomingIsStrict(t *testing.T) {
	assert.True(t, IsUpcoming(now.Add(time.Nanosecond), now))
	assert.False(t, IsUpcoming(now, now), "a show starting exactly now is past")
	assert.False(t, IsUpcoming(now.Add(-time.Hour), now))
}

func TestPartition(t *testing.T) {
	shows := []models.ArtistShow{
		{ArtistID: 1, StartsAt: now.Add(-48 * time.Hour)},
		{ArtistID: 2, StartsAt: now},
		{ArtistID: 3, StartsAt: now.Add(time.Hour)},
		{ArtistID: 4, StartsAt: now.Add(72 * time.Hour)},
	}

	past, upcoming := Partition(shows, func(s models.ArtistShow) time.Time { return s.StartsAt }, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, 1, past[0].ArtistID)
	assert.Equal(t, 2, past[1].ArtistID)
	assert.Equal(t, 3, upcoming[0].ArtistID)
	assert.Equal(t, 4, upcoming[1].ArtistID)
}

func TestPartitionEmptyGivesEmptySlices(t *testing.T) {
	past, upcoming := Partition([]models.VenueShow(nil), func(s models.VenueShow) time.Time { return s.StartsAt }, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func located(id int, name, city, state string) models.LocatedVenue {
	return models.LocatedVenue{VenueSummary: models.VenueSummary{ID: id, Name: name}, City: city, State: state}
}

func TestGroupByLocationOrdersByStateThenCity(t *testing.T) {
	venues := []models.LocatedVenue{
		located(1, "The Musical Hop", "San Francisco", "CA"),
		located(2, "The Dueling Pianos Bar", "New York", "NY"),
		located(3, "Park Square Live Music & Coffee", "San Francisco", "CA"),
		located(4, "Blue Note", "Albany", "NY"),
		located(5, "Hollywood Bowl", "Los Angeles", "CA"),
	}

	groups := GroupByLocation(venues)

	require.Len(t, groups, 4)
	assert.Equal(t, [2]string{"Los Angeles", "CA"}, [2]string{groups[0].City, groups[0].State})
	assert.Equal(t, [2]string{"San Francisco", "CA"}, [2]string{groups[1].City, groups[1].State})
	assert.Equal(t, [2]string{"Albany", "NY"}, [2]string{groups[2].City, groups[2].State})
	assert.Equal(t, [2]string{"New York", "NY"}, [2]string{groups[3].City, groups[3].State})

	// venues keep enumeration order within a group
	require.Len(t, groups[1].Venues, 2)
	assert.Equal(t, 1, groups[1].Venues[0].ID)
	assert.Equal(t, 3, groups[1].Venues[1].ID)
}

func TestGroupByLocationIsAPartition(t *testing.T) {
	venues := []models.LocatedVenue{
		located(1, "a", "X", "S1"),
		located(2, "b", "Y", "S1"),
		located(3, "c", "X", "S1"),
		located(4, "d", "X", "S2"),
		located(5, "e", "x", "S1"),
	}

	seen := map[int]int{}
	for _, g := range GroupByLocation(venues) {
		for _, v := range g.Venues {
			seen[v.ID]++
		}
	}
	assert.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d grouped %d times", id, n)
	}
}

func TestGroupByLocationIsCaseSensitive(t *testing.T) {
	groups := GroupByLocation([]models.LocatedVenue{
		located(1, "a", "boston", "MA"),
		located(2, "b", "Boston", "MA"),
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "Boston", groups[0].City, "upper case sorts first byte-wise")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%hop%", LikePattern("hop"))
	assert.Equal(t, "%%", LikePattern(""))
	assert.Equal(t, "%%", LikePattern("   "))
	assert.Equal(t, `%100\% \_live\\%`, LikePattern(`100% _live\`))
}

func TestFormatStartTime(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatStartTime(start))
}
