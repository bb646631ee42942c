package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pvpit/gatepass-api/internal/models"
)

func TestSortByTimestampDescOrdersNewestFirst(t *testing.T) {
	passes := []models.GatePass{
		{ID: "old", Timestamp: "2024-01-01T08:00:00Z"},
		{ID: "new", Timestamp: "2024-03-01T08:00:00Z"},
		{ID: "mid", Timestamp: "2024-02-01T08:00:00Z"},
	}

	sortByTimestampDesc(passes)

	assert.Equal(t, "new", passes[0].ID)
	assert.Equal(t, "mid", passes[1].ID)
	assert.Equal(t, "old", passes[2].ID)
}

func TestSortByTimestampDescStableForEqualStamps(t *testing.T) {
	passes := []models.GatePass{
		{ID: "a", Timestamp: "2024-01-01T08:00:00Z"},
		{ID: "b", Timestamp: "2024-01-01T08:00:00Z"},
	}

	sortByTimestampDesc(passes)

	assert.Equal(t, "a", passes[0].ID)
	assert.Equal(t, "b", passes[1].ID)
}

func TestSortByTimestampDescHandlesMissingStamp(t *testing.T) {
	passes := []models.GatePass{
		{ID: "blank", Timestamp: ""},
		{ID: "stamped", Timestamp: "2024-01-01T08:00:00Z"},
	}

	sortByTimestampDesc(passes)

	assert.Equal(t, "stamped", passes[0].ID)
	assert.Equal(t, "blank", passes[1].ID)
}
