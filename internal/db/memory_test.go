package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seedSeasonAndStar(t *testing.T, m *MemStore) (seasonID, starID int) {
	t.Helper()
	season, err := m.CreateSeason("الصيف", "#F4A300", "sun", "93 يوم", 1)
	require.NoError(t, err)
	star, err := m.CreateStar(NewStar{
		SeasonID: season.ID, Name: "الثريا",
		StartDate: "2025-06-07", EndDate: "2025-06-19",
	})
	require.NoError(t, err)
	return season.ID, star.ID
}

func TestMemStoreStarDateRangeCheck(t *testing.T) {
	m := NewMemStore()
	seasonID, starID := seedSeasonAndStar(t, m)

	// insert with an inverted range fails like the SQL CHECK would
	_, err := m.CreateStar(NewStar{
		SeasonID: seasonID, Name: "x",
		StartDate: "2025-07-01", EndDate: "2025-06-01",
	})
	require.Error(t, err)

	// a one-sided patch that inverts the merged range fails too
	bad := "2025-07-01"
	require.Error(t, m.UpdateStar(starID, StarPatch{StartDate: &bad}))

	// and the stored record stays untouched
	star, err := m.GetStarByID(starID)
	require.NoError(t, err)
	require.Equal(t, "2025-06-07", star.StartDate)
	require.Equal(t, "2025-06-19", star.EndDate)

	good := "2025-06-10"
	require.NoError(t, m.UpdateStar(starID, StarPatch{StartDate: &good}))
}

func TestMemStoreSeasonDeleteCascades(t *testing.T) {
	m := NewMemStore()
	seasonID, starID := seedSeasonAndStar(t, m)

	require.NoError(t, m.DeleteSeason(seasonID))
	_, err := m.GetStarByID(starID)
	require.ErrorIs(t, err, ErrNotFound)
}
