package workouts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	// postgres justifies a month to 30 days
	secondsPerMonth = 30 * secondsPerDay
)

// MaxDurationSeconds is the longest duration a postgres interval holds in its microseconds part.
const MaxDurationSeconds = math.MaxInt64 / int64(time.Second/time.Microsecond)

// Duration is a wall-clock style workout duration, displayed as HH:MM:SS.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// ParseDuration builds a Duration from raw form components.
// A missing, non-numeric or negative component counts as 0.
func ParseDuration(hours, minutes, seconds string) Duration {
	return Duration{
		Hours:   parseComponent(hours),
		Minutes: parseComponent(minutes),
		Seconds: parseComponent(seconds),
	}
}

func parseComponent(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseClock parses an HH:MM:SS string (hours may have more than two digits).
func ParseClock(s string) (Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Duration{}, fmt.Errorf("invalid duration %q, expected HH:MM:SS", s)
	}

	var values [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Duration{}, fmt.Errorf("invalid duration %q, component %q", s, p)
		}
		values[i] = v
	}

	d := Duration{Hours: values[0], Minutes: values[1], Seconds: values[2]}
	if !d.InRange() {
		return Duration{}, fmt.Errorf("%w: %q", ErrDurationOutOfRange, s)
	}

	return d.Normalized(), nil
}

// DurationFromSeconds expands total seconds; minutes and seconds end up in 0..59, hours are unbounded.
// Negative totals are clamped to 0.
func DurationFromSeconds(total int64) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{
		Hours:   int(total / secondsPerHour),
		Minutes: int(total % secondsPerHour / secondsPerMinute),
		Seconds: int(total % secondsPerMinute),
	}
}

// InRange reports whether the total fits MaxDurationSeconds. Components are checked one by one
// so the total itself cannot overflow.
func (d Duration) InRange() bool {
	if int64(d.Hours) > MaxDurationSeconds/secondsPerHour ||
		int64(d.Minutes) > MaxDurationSeconds/secondsPerMinute ||
		int64(d.Seconds) > MaxDurationSeconds {
		return false
	}
	return d.TotalSeconds() <= MaxDurationSeconds
}

func (d Duration) TotalSeconds() int64 {
	return int64(d.Hours)*secondsPerHour + int64(d.Minutes)*secondsPerMinute + int64(d.Seconds)
}

func (d Duration) Normalized() Duration {
	return DurationFromSeconds(d.TotalSeconds())
}

// String renders the normalized duration as zero-padded HH:MM:SS.
func (d Duration) String() string {
	n := d.Normalized()
	return fmt.Sprintf("%02d:%02d:%02d", n.Hours, n.Minutes, n.Seconds)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Interval saturates at MaxDurationSeconds.
func (d Duration) Interval() pgtype.Interval {
	total := MaxDurationSeconds
	if d.InRange() {
		total = d.TotalSeconds()
	}
	return pgtype.Interval{
		Microseconds: total * int64(time.Second/time.Microsecond),
		Valid:        true,
	}
}

// DurationFromInterval converts a postgres interval; sub-second precision is dropped.
func DurationFromInterval(iv pgtype.Interval) Duration {
	total := iv.Microseconds/int64(time.Second/time.Microsecond) +
		int64(iv.Days)*secondsPerDay +
		int64(iv.Months)*secondsPerMonth
	return DurationFromSeconds(total)
}
