package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"naive micro", "2024-01-01T12:00:00.123456", time.Date(2024, 1, 1, 12, 0, 0, 123456000, time.UTC)},
		{"naive seconds", "2024-01-01T12:00:00", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"space separated", "2024-01-01 12:00:00", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 zulu", "2024-01-01T12:00:00Z", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-01-01T14:00:00+02:00", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseTimestamp("yesterday")
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestBedUnmarshal_NullFields(t *testing.T) {
	var bed Bed
	err := json.Unmarshal([]byte(`{"id":2,"plant":null,"progress":0,"is_locked":true,"start_time":null,"grow_time":null}`), &bed)
	require.NoError(t, err)

	assert.Equal(t, 2, bed.ID)
	assert.True(t, bed.Locked)
	assert.Nil(t, bed.Plant)
	assert.Nil(t, bed.StartTime)
	assert.Zero(t, bed.GrowTime)
}

func TestBedUnmarshal_PlantedBed(t *testing.T) {
	var bed Bed
	err := json.Unmarshal([]byte(`{
		"id": 1,
		"plant": {"id": 1, "name": "Rose", "price": 100, "grow_time": 30, "reward": 1000, "exp": 20},
		"progress": 40,
		"is_locked": false,
		"start_time": "2024-01-01T12:00:00.500000",
		"grow_time": 30
	}`), &bed)
	require.NoError(t, err)

	require.NotNil(t, bed.Plant)
	assert.Equal(t, "Rose", bed.Plant.Name)
	assert.Equal(t, 40.0, bed.Progress)
	assert.Equal(t, 30, bed.GrowTime)
	require.NotNil(t, bed.StartTime)
	assert.Equal(t, 500*time.Millisecond, time.Duration(bed.StartTime.Nanosecond()))
	assert.True(t, bed.IsPlanted())
}

func TestBedRoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	in := Bed{ID: 3, Plant: &Plant{ID: 2, Name: "Tulip"}, Progress: 10, StartTime: &start, GrowTime: 45}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Bed
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.ID, out.ID)
	assert.True(t, start.Equal(*out.StartTime))
	assert.Equal(t, in.GrowTime, out.GrowTime)
}

func TestBedNormalize(t *testing.T) {
	start := time.Now()
	locked := Bed{ID: 1, Locked: true, Plant: &Plant{ID: 1}, StartTime: &start, GrowTime: 30, Progress: 50}.Normalize()
	assert.Nil(t, locked.Plant)
	assert.Nil(t, locked.StartTime)
	assert.Zero(t, locked.Progress)

	over := Bed{ID: 1, Plant: &Plant{ID: 1}, Progress: 140}.Normalize()
	assert.Equal(t, MaxProgress, over.Progress)
	assert.True(t, over.IsReady())
}
