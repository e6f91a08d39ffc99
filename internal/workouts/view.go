package workouts

import (
	"strconv"
	"time"
)

const notAvailable = "N/A"

type entryRow struct {
	Date        string
	Description string
	Duration    string
	Distance    string
	Pace        string
	Zone5       string
	Zone4       string
	Zone3       string
	Zone2       string
	Zone1       string
	AvgHR       string
	MaxHR       string
	Strain      string
}

type averagesRow struct {
	Duration string
	Distance string
	Pace     string
	Zone5    string
	Zone4    string
	Zone3    string
	Zone2    string
	Zone1    string
	AvgHR    string
	MaxHR    string
	Strain   string
}

type indexPage struct {
	Today string
}

type logsPage struct {
	Entries  []entryRow
	Averages averagesRow
}

func newIndexPage(now time.Time) indexPage {
	return indexPage{
		Today: now.Format(DateLayout),
	}
}

func newLogsPage(entries []LogEntry, latest *AveragesSnapshot) logsPage {
	rows := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, newEntryRow(e))
	}
	return logsPage{
		Entries:  rows,
		Averages: newAveragesRow(latest),
	}
}

func newEntryRow(e LogEntry) entryRow {
	duration := ""
	if e.Duration != nil {
		duration = e.Duration.String()
	}
	return entryRow{
		Date:        e.Date.Format(DateLayout),
		Description: e.Description,
		Duration:    duration,
		Distance:    formatCell(e.Distance),
		Pace:        formatCell(e.Pace),
		Zone5:       formatCell(e.Zone5),
		Zone4:       formatCell(e.Zone4),
		Zone3:       formatCell(e.Zone3),
		Zone2:       formatCell(e.Zone2),
		Zone1:       formatCell(e.Zone1),
		AvgHR:       formatCell(e.AvgHR),
		MaxHR:       formatCell(e.MaxHR),
		Strain:      formatCell(e.Strain),
	}
}

// newAveragesRow renders every field as N/A when no snapshot exists.
func newAveragesRow(s *AveragesSnapshot) averagesRow {
	if s == nil {
		return averagesRow{
			Duration: notAvailable,
			Distance: notAvailable,
			Pace:     notAvailable,
			Zone5:    notAvailable,
			Zone4:    notAvailable,
			Zone3:    notAvailable,
			Zone2:    notAvailable,
			Zone1:    notAvailable,
			AvgHR:    notAvailable,
			MaxHR:    notAvailable,
			Strain:   notAvailable,
		}
	}
	return averagesRow{
		Duration: s.DurationAvg.String(),
		Distance: formatAverage(s.DistanceAvg),
		Pace:     formatAverage(s.PaceAvg),
		Zone5:    formatAverage(s.Zone5Avg),
		Zone4:    formatAverage(s.Zone4Avg),
		Zone3:    formatAverage(s.Zone3Avg),
		Zone2:    formatAverage(s.Zone2Avg),
		Zone1:    formatAverage(s.Zone1Avg),
		AvgHR:    formatAverage(s.AvgHRAvg),
		MaxHR:    formatAverage(s.MaxHRAvg),
		Strain:   formatAverage(s.StrainAvg),
	}
}

func formatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
