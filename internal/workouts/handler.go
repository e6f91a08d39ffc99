package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/2beens/exerciselog/internal/telemetry/tracing"
	"github.com/2beens/exerciselog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Submit(ctx context.Context, entry LogEntry) (*LogEntry, *AveragesSnapshot, error)
	ListEntries(ctx context.Context) ([]LogEntry, error)
	LatestAverages(ctx context.Context) (*AveragesSnapshot, error)
	AveragesHistory(ctx context.Context) ([]AveragesSnapshot, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, dir string) (string, error)
}

type renderer interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

type Handler struct {
	service    workoutsService
	templates  renderer
	exportRoot string
	now        func() time.Time
}

// NewHandler creates the workouts handler. Export archives are built in per-request
// directories under exportRoot (os.TempDir when empty).
func NewHandler(service workoutsService, templates renderer, exportRoot string) *Handler {
	return &Handler{
		service:    service,
		templates:  templates,
		exportRoot: exportRoot,
		now:        time.Now,
	}
}

func (handler *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	handler.render(w, "index", newIndexPage(handler.now()))
}

func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.submit")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("submit entry, parse form: %s", err)
		http.Error(w, "error, failed to parse form", http.StatusBadRequest)
		return
	}

	entry, err := EntryFromForm(r.PostForm)
	if err != nil {
		log.Warnf("submit entry: %s", err)
		if errors.Is(err, ErrDurationOutOfRange) {
			http.Error(w, "error, duration out of range", http.StatusBadRequest)
			return
		}
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if _, _, err := handler.service.Submit(ctx, entry); err != nil {
		log.Errorf("failed to submit entry for %s: %s", entry.Date.Format(DateLayout), err)
		if pkg.IsNumericOverflowError(err) {
			http.Error(w, "error, numeric value out of range", http.StatusBadRequest)
			return
		}
		http.Error(w, "error, failed to add entry", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/logs", http.StatusFound)
}

func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs")
	defer span.End()

	entries, err := handler.service.ListEntries(ctx)
	if err != nil {
		log.Errorf("failed to list entries: %s", err)
		http.Error(w, "error, failed to get entries", http.StatusInternalServerError)
		return
	}

	latest, err := handler.service.LatestAverages(ctx)
	if err != nil && !errors.Is(err, ErrNoAverages) {
		log.Errorf("failed to get latest averages: %s", err)
		http.Error(w, "error, failed to get averages", http.StatusInternalServerError)
		return
	}

	handler.render(w, "logs", newLogsPage(entries, latest))
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.export")
	defer span.End()

	dir, err := os.MkdirTemp(handler.exportRoot, "export-*")
	if err != nil {
		log.Errorf("export: create temp dir: %s", err)
		http.Error(w, "error, export failed", http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Errorf("export: remove temp dir %s: %s", dir, err)
		}
	}()

	archivePath, err := handler.service.Export(ctx, dir)
	if err != nil {
		log.Errorf("export: %s", err)
		http.Error(w, "error, export failed", http.StatusInternalServerError)
		return
	}

	archive, err := os.Open(archivePath)
	if err != nil {
		log.Errorf("export: open archive: %s", err)
		http.Error(w, "error, export failed", http.StatusInternalServerError)
		return
	}
	defer archive.Close()

	stat, err := archive.Stat()
	if err != nil {
		log.Errorf("export: stat archive: %s", err)
		http.Error(w, "error, export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", pkg.ContentType.Zip)
	w.Header().Set("Content-Disposition", `attachment; filename="`+ArchiveName+`"`)
	http.ServeContent(w, r, ArchiveName, stat.ModTime(), archive)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	if err := handler.service.Clear(ctx); err != nil {
		log.Errorf("failed to clear entries and averages: %s", err)
		http.Error(w, "error, failed to delete data", http.StatusInternalServerError)
		return
	}

	log.Println("all entries and averages deleted")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (handler *Handler) HandleListEntriesJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.api.logs")
	defer span.End()

	entries, err := handler.service.ListEntries(ctx)
	if err != nil {
		log.Errorf("failed to list entries: %s", err)
		http.Error(w, "error, failed to get entries", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, entries)
}

func (handler *Handler) HandleLatestAveragesJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.api.latest")
	defer span.End()

	latest, err := handler.service.LatestAverages(ctx)
	if err != nil {
		if errors.Is(err, ErrNoAverages) {
			http.Error(w, "no averages", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest averages: %s", err)
		http.Error(w, "error, failed to get averages", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, latest)
}

func (handler *Handler) HandleAveragesHistoryJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.api.history")
	defer span.End()

	history, err := handler.service.AveragesHistory(ctx)
	if err != nil {
		log.Errorf("failed to get averages history: %s", err)
		http.Error(w, "error, failed to get averages", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, history)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, http.StatusOK)
}

// render executes the page into a buffer before writing the response.
func (handler *Handler) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := handler.templates.ExecuteTemplate(&buf, page, data); err != nil {
		log.Errorf("render %s: %s", page, err)
		http.Error(w, "error, failed to render page", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.HTML, buf.Bytes(), http.StatusOK)
}
