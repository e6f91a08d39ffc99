package workouts

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

const (
	LogsCSVName     = "exercise_logs.csv"
	AveragesCSVName = "exercise_averages.csv"
	ArchiveName     = "workouts.zip"
)

var (
	logsCSVHeader = []string{
		"id", "date", "description", "duration", "distance", "pace",
		"zone5", "zone4", "zone3", "zone2", "zone1", "avg_hr", "max_hr", "strain",
	}
	averagesCSVHeader = []string{
		"id", "duration_avg", "distance_avg", "pace_avg",
		"zone5_avg", "zone4_avg", "zone3_avg", "zone2_avg", "zone1_avg",
		"avg_hr_avg", "max_hr_avg", "strain_avg", "created_at",
	}
)

func WriteEntriesCSV(w io.Writer, entries []LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logsCSVHeader); err != nil {
		return err
	}

	for _, e := range entries {
		duration := ""
		if e.Duration != nil {
			duration = e.Duration.String()
		}
		record := []string{
			strconv.Itoa(e.ID),
			e.Date.Format(DateLayout),
			e.Description,
			duration,
			formatOptional(e.Distance),
			formatOptional(e.Pace),
			formatOptional(e.Zone5),
			formatOptional(e.Zone4),
			formatOptional(e.Zone3),
			formatOptional(e.Zone2),
			formatOptional(e.Zone1),
			formatOptional(e.AvgHR),
			formatOptional(e.MaxHR),
			formatOptional(e.Strain),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteAveragesCSV(w io.Writer, snapshots []AveragesSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(averagesCSVHeader); err != nil {
		return err
	}

	for _, s := range snapshots {
		record := []string{
			strconv.Itoa(s.ID),
			s.DurationAvg.String(),
			formatAverage(s.DistanceAvg),
			formatAverage(s.PaceAvg),
			formatAverage(s.Zone5Avg),
			formatAverage(s.Zone4Avg),
			formatAverage(s.Zone3Avg),
			formatAverage(s.Zone2Avg),
			formatAverage(s.Zone1Avg),
			formatAverage(s.AvgHRAvg),
			formatAverage(s.MaxHRAvg),
			formatAverage(s.StrainAvg),
			s.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeFile creates path and hands it to write; the close error is kept alongside any write error.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return write(f)
}

// CreateArchive zips the given files, flat, into archivePath.
func CreateArchive(archivePath string, files ...string) (err error) {
	archive, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		err = multierr.Append(err, archive.Close())
	}()

	zw := zip.NewWriter(archive)
	for _, path := range files {
		if err := addToArchive(zw, path); err != nil {
			return multierr.Append(fmt.Errorf("add %s: %w", filepath.Base(path), err), zw.Close())
		}
	}

	return zw.Close()
}

func addToArchive(zw *zip.Writer, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     filepath.Base(path),
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}

	_, err = io.Copy(w, f)
	return err
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
