package repository

import (
	"testing"

	"campus-compass-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBuildings_CaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	building, _, _ := seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchBuildings("main")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, models.SearchTypeBuilding, r.Type)
	assert.Equal(t, building.ID, r.ID)
	assert.Equal(t, "Main Hall", r.DisplayName)
	assert.Nil(t, r.SubTitle)
	assert.Equal(t, building.ID, r.BuildingID)
	assert.Nil(t, r.FloorID)
	assert.Equal(t, *building.Latitude, *r.Latitude)
}

func TestSearchRooms_MatchesNumberAndResolvesAncestors(t *testing.T) {
	db := setupTestDB(t)
	building, first, _ := seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchRooms("101")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, models.SearchTypeRoom, r.Type)
	assert.Equal(t, "101", r.DisplayName) // room number wins as display name
	require.NotNil(t, r.SubTitle)
	assert.Equal(t, "Lecture Room A", *r.SubTitle)
	assert.Equal(t, building.ID, r.BuildingID)
	require.NotNil(t, r.FloorID)
	assert.Equal(t, first.ID, *r.FloorID)
	assert.Equal(t, *building.Latitude, *r.Latitude)
	assert.Equal(t, *building.Longitude, *r.Longitude)
}

func TestSearchRooms_UnnumberedRoomFallsBackToName(t *testing.T) {
	db := setupTestDB(t)
	seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchRooms("Seminar")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "seminar room", results[0].DisplayName)
}

func TestSearchRooms_ExcludesFacilities(t *testing.T) {
	db := setupTestDB(t)
	seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchRooms("Cafeteria")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchFacilities_MatchesFeaturesText(t *testing.T) {
	db := setupTestDB(t)
	_, first, _ := seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchFacilities("coffee")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, models.SearchTypeFacility, r.Type)
	assert.Equal(t, "Cafeteria", r.DisplayName)
	assert.Nil(t, r.SubTitle)
	require.NotNil(t, r.FloorID)
	assert.Equal(t, first.ID, *r.FloorID)
}

func TestSearchFacilities_ExcludesClassrooms(t *testing.T) {
	db := setupTestDB(t)
	seedCampus(t, db)

	repo := NewSearchRepo(db)

	results, err := repo.SearchFacilities("Lecture")
	require.NoError(t, err)
	assert.Empty(t, results)
}
