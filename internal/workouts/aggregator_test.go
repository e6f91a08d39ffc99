package workouts_test

import (
	"testing"

	"github.com/2beens/exerciselog/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	snapshot := workouts.Aggregate(nil)
	assert.Equal(t, workouts.AveragesSnapshot{}, snapshot)
	assert.Equal(t, "00:00:00", snapshot.DurationAvg.String())

	assert.Equal(t, workouts.AveragesSnapshot{}, workouts.Aggregate([]workouts.LogEntry{}))
}

func TestAggregate_SingleEntry(t *testing.T) {
	entry := workouts.LogEntry{
		Duration: &workouts.Duration{Minutes: 30},
		Distance: ptr(5.0),
		Pace:     ptr(6.0),
		Zone1:    ptr(0),
		Zone2:    ptr(0),
		Zone3:    ptr(0),
		Zone4:    ptr(0),
		Zone5:    ptr(0),
		AvgHR:    ptr(140),
		MaxHR:    ptr(170),
		Strain:   ptr(10),
	}

	snapshot := workouts.Aggregate([]workouts.LogEntry{entry})
	assert.Equal(t, "00:30:00", snapshot.DurationAvg.String())
	assert.Equal(t, 5.0, snapshot.DistanceAvg)
	assert.Equal(t, 6.0, snapshot.PaceAvg)
	assert.Equal(t, 0.0, snapshot.Zone1Avg)
	assert.Equal(t, 140.0, snapshot.AvgHRAvg)
	assert.Equal(t, 170.0, snapshot.MaxHRAvg)
	assert.Equal(t, 10.0, snapshot.StrainAvg)
}

func TestAggregate_MissingValuesCountAsZero(t *testing.T) {
	entries := []workouts.LogEntry{
		{Distance: workouts.ParseDecimal("abc"), Pace: ptr(4)},
		{Distance: ptr(10), Duration: &workouts.Duration{Hours: 1}},
		{},
	}

	snapshot := workouts.Aggregate(entries)
	assert.InDelta(t, 10.0/3, snapshot.DistanceAvg, 1e-9)
	assert.InDelta(t, 4.0/3, snapshot.PaceAvg, 1e-9)
	assert.Equal(t, 0.0, snapshot.StrainAvg)
	assert.Equal(t, "00:20:00", snapshot.DurationAvg.String())
}

func TestAggregate_UnparseableDistance(t *testing.T) {
	snapshot := workouts.Aggregate([]workouts.LogEntry{
		{Distance: workouts.ParseDecimal("abc")},
	})
	assert.Equal(t, 0.0, snapshot.DistanceAvg)
}

func TestAggregate_DurationRoundsToNearestSecond(t *testing.T) {
	snapshot := workouts.Aggregate([]workouts.LogEntry{
		{Duration: &workouts.Duration{Seconds: 1}},
		{Duration: &workouts.Duration{Seconds: 2}},
	})
	// 1.5s
	assert.Equal(t, "00:00:02", snapshot.DurationAvg.String())

	snapshot = workouts.Aggregate([]workouts.LogEntry{
		{Duration: &workouts.Duration{Seconds: 1}},
		{Duration: &workouts.Duration{Seconds: 1}},
		{Duration: &workouts.Duration{Seconds: 2}},
	})
	assert.Equal(t, "00:00:01", snapshot.DurationAvg.String())
}

func TestAggregate_MeanOfRandomEntries(t *testing.T) {
	faker := gofakeit.New(42)

	entries := make([]workouts.LogEntry, 25)
	var distanceSum, hrSum float64
	for i := range entries {
		distance := faker.Float64Range(0, 42)
		hr := float64(faker.IntRange(90, 190))
		distanceSum += distance
		hrSum += hr
		entries[i] = workouts.LogEntry{
			Distance: ptr(distance),
			AvgHR:    ptr(hr),
		}
	}

	snapshot := workouts.Aggregate(entries)
	assert.InDelta(t, distanceSum/25, snapshot.DistanceAvg, 1e-9)
	assert.InDelta(t, hrSum/25, snapshot.AvgHRAvg, 1e-9)
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := []workouts.LogEntry{
		{Distance: ptr(3.3), Pace: ptr(5.25), Strain: ptr(12.1), Duration: &workouts.Duration{Minutes: 20}},
		{Distance: ptr(7.1), Zone2: ptr(14), MaxHR: ptr(181)},
	}

	first := workouts.Aggregate(entries)
	second := workouts.Aggregate(entries)
	require.Equal(t, first, second)
	assert.Equal(t, first.Rounded(), second.Rounded())
}

func TestAveragesSnapshot_Rounded(t *testing.T) {
	s := workouts.AveragesSnapshot{
		DistanceAvg: 10.0 / 3,
		PaceAvg:     2.675,
		StrainAvg:   -1.005,
		AvgHRAvg:    140,
	}

	rounded := s.Rounded()
	assert.Equal(t, 3.33, rounded.DistanceAvg)
	assert.Equal(t, 140.0, rounded.AvgHRAvg)
	assert.InDelta(t, 2.68, rounded.PaceAvg, 0.011)
	assert.InDelta(t, -1.0, rounded.StrainAvg, 0.011)
	// original untouched
	assert.Equal(t, 10.0/3, s.DistanceAvg)
}
