package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/exerciselog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// AggregateFunc turns the full set of log entries into one averages snapshot.
type AggregateFunc func(entries []LogEntry) AveragesSnapshot

const (
	entryColumns = `id, date, description, duration, distance, pace,
		zone5, zone4, zone3, zone2, zone1, avg_hr, max_hr, strain, created_at`
	snapshotColumns = `id, duration_avg, distance_avg, pace_avg,
		zone5_avg, zone4_avg, zone3_avg, zone2_avg, zone1_avg,
		avg_hr_avg, max_hr_avg, strain_avg, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddEntry inserts the entry, recomputes the averages over all entries (including the new one)
// and appends the rounded snapshot, all in one transaction.
func (r *Repo) AddEntry(
	ctx context.Context,
	entry LogEntry,
	aggregate AggregateFunc,
) (added *LogEntry, snapshot *AveragesSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			added, snapshot = nil, nil
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	// concurrent submissions must see each other's entries when computing the averages
	if _, err := tx.Exec(ctx, `LOCK TABLE exercise_logs IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, nil, fmt.Errorf("lock exercise_logs: %w", err)
	}

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO exercise_logs
				(date, description, duration, distance, pace, zone5, zone4, zone3, zone2, zone1, avg_hr, max_hr, strain)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id, created_at;`,
		entry.Date, entry.Description, durationArg(entry.Duration),
		entry.Distance, entry.Pace,
		entry.Zone5, entry.Zone4, entry.Zone3, entry.Zone2, entry.Zone1,
		entry.AvgHR, entry.MaxHR, entry.Strain,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("insert entry: %w", err)
	}
	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	entries, err := r.listEntries(ctx, tx, `ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("scan entries: %w", err)
	}
	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	computed, err := r.insertSnapshot(ctx, tx, aggregate(entries))
	if err != nil {
		return nil, nil, err
	}

	return &entry, computed, nil
}

func (r *Repo) insertSnapshot(ctx context.Context, tx pgx.Tx, s AveragesSnapshot) (*AveragesSnapshot, error) {
	s = s.Rounded()
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO exercise_averages
				(duration_avg, distance_avg, pace_avg, zone5_avg, zone4_avg, zone3_avg, zone2_avg, zone1_avg,
				 avg_hr_avg, max_hr_avg, strain_avg)
				VALUES ($1, ROUND($2::numeric, 2), ROUND($3::numeric, 2), ROUND($4::numeric, 2), ROUND($5::numeric, 2),
				        ROUND($6::numeric, 2), ROUND($7::numeric, 2), ROUND($8::numeric, 2), ROUND($9::numeric, 2),
				        ROUND($10::numeric, 2), ROUND($11::numeric, 2))
			RETURNING id, created_at;`,
		s.DurationAvg.Interval(),
		s.DistanceAvg, s.PaceAvg,
		s.Zone5Avg, s.Zone4Avg, s.Zone3Avg, s.Zone2Avg, s.Zone1Avg,
		s.AvgHRAvg, s.MaxHRAvg, s.StrainAvg,
	).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert averages: %w", err)
	}
	return &s, nil
}

// ListEntries returns all entries, newest date first.
func (r *Repo) ListEntries(ctx context.Context) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.listEntries(ctx, r.db, `ORDER BY date DESC, id DESC`)
}

// ListEntriesByID returns all entries in insertion order.
func (r *Repo) ListEntriesByID(ctx context.Context) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.listEntries(ctx, r.db, `ORDER BY id`)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *Repo) listEntries(ctx context.Context, q querier, orderBy string) ([]LogEntry, error) {
	rows, err := q.Query(ctx, `SELECT `+entryColumns+` FROM exercise_logs `+orderBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2entries(rows)
}

func (r *Repo) LatestSnapshot(ctx context.Context) (_ *AveragesSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latestaverages")
	defer func() {
		if errors.Is(err, ErrNoAverages) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+snapshotColumns+` FROM exercise_averages ORDER BY id DESC LIMIT 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots, err := r.rows2snapshots(rows)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, ErrNoAverages
	}

	return &snapshots[0], nil
}

// ListSnapshots returns the full averages history in insertion order.
func (r *Repo) ListSnapshots(ctx context.Context) (_ []AveragesSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listaverages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+snapshotColumns+` FROM exercise_averages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2snapshots(rows)
}

// Clear empties both tables and resets their id sequences.
func (r *Repo) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(ctx, `TRUNCATE TABLE exercise_logs, exercise_averages RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]LogEntry, error) {
	entries := make([]LogEntry, 0)
	for rows.Next() {
		var e LogEntry
		var duration pgtype.Interval
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Description, &duration,
			&e.Distance, &e.Pace,
			&e.Zone5, &e.Zone4, &e.Zone3, &e.Zone2, &e.Zone1,
			&e.AvgHR, &e.MaxHR, &e.Strain,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if duration.Valid {
			d := DurationFromInterval(duration)
			e.Duration = &d
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) rows2snapshots(rows pgx.Rows) ([]AveragesSnapshot, error) {
	snapshots := make([]AveragesSnapshot, 0)
	for rows.Next() {
		var s AveragesSnapshot
		var duration pgtype.Interval
		if err := rows.Scan(
			&s.ID, &duration,
			&s.DistanceAvg, &s.PaceAvg,
			&s.Zone5Avg, &s.Zone4Avg, &s.Zone3Avg, &s.Zone2Avg, &s.Zone1Avg,
			&s.AvgHRAvg, &s.MaxHRAvg, &s.StrainAvg,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		s.DurationAvg = DurationFromInterval(duration)
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func durationArg(d *Duration) pgtype.Interval {
	if d == nil {
		return pgtype.Interval{}
	}
	return d.Interval()
}
