package workouts

import (
	"errors"
	"math"
	"time"
)

var (
	ErrNoAverages  = errors.New("no averages recorded")
	ErrInvalidDate = errors.New("invalid date")

	ErrDurationOutOfRange = errors.New("duration out of range")
)

const DateLayout = "2006-01-02"

// LogEntry is one workout. A nil numeric field was missing or unparseable on submission.
type LogEntry struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Duration    *Duration `json:"duration,omitempty"`
	Distance    *float64  `json:"distance"`
	Pace        *float64  `json:"pace"`
	Zone1       *float64  `json:"zone1"`
	Zone2       *float64  `json:"zone2"`
	Zone3       *float64  `json:"zone3"`
	Zone4       *float64  `json:"zone4"`
	Zone5       *float64  `json:"zone5"`
	AvgHR       *float64  `json:"avgHr"`
	MaxHR       *float64  `json:"maxHr"`
	Strain      *float64  `json:"strain"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AveragesSnapshot holds the means over all log entries at the time it was computed.
type AveragesSnapshot struct {
	ID          int       `json:"id"`
	DurationAvg Duration  `json:"durationAvg"`
	DistanceAvg float64   `json:"distanceAvg"`
	PaceAvg     float64   `json:"paceAvg"`
	Zone1Avg    float64   `json:"zone1Avg"`
	Zone2Avg    float64   `json:"zone2Avg"`
	Zone3Avg    float64   `json:"zone3Avg"`
	Zone4Avg    float64   `json:"zone4Avg"`
	Zone5Avg    float64   `json:"zone5Avg"`
	AvgHRAvg    float64   `json:"avgHrAvg"`
	MaxHRAvg    float64   `json:"maxHrAvg"`
	StrainAvg   float64   `json:"strainAvg"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Rounded returns a copy with every numeric average rounded to 2 decimal places.
func (s AveragesSnapshot) Rounded() AveragesSnapshot {
	s.DistanceAvg = Round2(s.DistanceAvg)
	s.PaceAvg = Round2(s.PaceAvg)
	s.Zone1Avg = Round2(s.Zone1Avg)
	s.Zone2Avg = Round2(s.Zone2Avg)
	s.Zone3Avg = Round2(s.Zone3Avg)
	s.Zone4Avg = Round2(s.Zone4Avg)
	s.Zone5Avg = Round2(s.Zone5Avg)
	s.AvgHRAvg = Round2(s.AvgHRAvg)
	s.MaxHRAvg = Round2(s.MaxHRAvg)
	s.StrainAvg = Round2(s.StrainAvg)
	return s
}

// Round2 rounds half away from zero, like postgres ROUND(numeric, 2).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
