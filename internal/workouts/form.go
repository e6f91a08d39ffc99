package workouts

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// html form field names
const (
	formDate        = "formDate"
	formDescription = "formDescription"
	formHours       = "formHours"
	formMinutes     = "formMinutes"
	formSeconds     = "formSeconds"
	formDistance    = "formDistance"
	formPace        = "formPace"
	formZone1       = "form1"
	formZone2       = "form2"
	formZone3       = "form3"
	formZone4       = "form4"
	formZone5       = "form5"
	formAvgHR       = "formAvgHr"
	formMaxHR       = "formMaxHr"
	formStrain      = "formStrain"
)

// EntryFromForm coerces a submitted form into a LogEntry. Only an invalid date or a duration
// too long to store is rejected, every other field falls back to "missing".
func EntryFromForm(form url.Values) (LogEntry, error) {
	dateStr := strings.TrimSpace(form.Get(formDate))
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return LogEntry{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}

	duration, err := durationFromForm(form)
	if err != nil {
		return LogEntry{}, err
	}

	return LogEntry{
		Date:        date,
		Description: strings.TrimSpace(form.Get(formDescription)),
		Duration:    duration,
		Distance:    ParseDecimal(form.Get(formDistance)),
		Pace:        ParseDecimal(form.Get(formPace)),
		Zone1:       ParseDecimal(form.Get(formZone1)),
		Zone2:       ParseDecimal(form.Get(formZone2)),
		Zone3:       ParseDecimal(form.Get(formZone3)),
		Zone4:       ParseDecimal(form.Get(formZone4)),
		Zone5:       ParseDecimal(form.Get(formZone5)),
		AvgHR:       ParseDecimal(form.Get(formAvgHR)),
		MaxHR:       ParseDecimal(form.Get(formMaxHR)),
		Strain:      ParseDecimal(form.Get(formStrain)),
	}, nil
}

func durationFromForm(form url.Values) (*Duration, error) {
	hours := strings.TrimSpace(form.Get(formHours))
	minutes := strings.TrimSpace(form.Get(formMinutes))
	seconds := strings.TrimSpace(form.Get(formSeconds))
	if hours == "" && minutes == "" && seconds == "" {
		return nil, nil
	}

	d := ParseDuration(hours, minutes, seconds)
	if !d.InRange() {
		return nil, fmt.Errorf("%w: %sh %sm %ss", ErrDurationOutOfRange, hours, minutes, seconds)
	}

	d = d.Normalized()
	return &d, nil
}

// ParseDecimal returns nil for empty, unparseable or non-finite input.
func ParseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
