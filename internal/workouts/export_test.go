package workouts_test

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/exerciselog/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEntriesCSV(t *testing.T) {
	var buf bytes.Buffer
	err := workouts.WriteEntriesCSV(&buf, []workouts.LogEntry{
		{
			ID:          1,
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: `said "hi"`,
			Distance:    ptr(5.25),
			Zone5:       ptr(3),
			Zone1:       ptr(40),
			Strain:      ptr(10),
		},
		{
			ID:       2,
			Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Duration: &workouts.Duration{Hours: 1, Minutes: 2, Seconds: 3},
		},
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"1", "2024-01-01", `said "hi"`, "", "5.25", "", "3", "", "", "", "40", "", "", "10"}, records[1])
	assert.Equal(t, []string{"2", "2024-01-02", "", "01:02:03", "", "", "", "", "", "", "", "", "", ""}, records[2])
}

func TestWriteAveragesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, workouts.WriteAveragesCSV(&buf, nil))
	assert.Equal(t,
		"id,duration_avg,distance_avg,pace_avg,zone5_avg,zone4_avg,zone3_avg,zone2_avg,zone1_avg,avg_hr_avg,max_hr_avg,strain_avg,created_at\n",
		buf.String(),
	)
}

func TestCreateArchive(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(first, []byte("a\n1\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("b\n2\n"), 0o600))

	archivePath := filepath.Join(dir, "out.zip")
	require.NoError(t, workouts.CreateArchive(archivePath, first, second))

	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 2)
	assert.Equal(t, "a.csv", zr.File[0].Name)
	assert.Equal(t, "b.csv", zr.File[1].Name)
	assert.Equal(t, zip.Deflate, zr.File[1].Method)
	assert.Equal(t, [][]string{{"b"}, {"2"}}, readZippedCSV(t, zr.File[1]))
}

func TestCreateArchive_MissingFile(t *testing.T) {
	dir := t.TempDir()
	err := workouts.CreateArchive(filepath.Join(dir, "out.zip"), filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add missing.csv")
}
