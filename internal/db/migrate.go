package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the SQL used to create the exercise log tables.
func Schema() string {
	return schemaSQL
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Migrate creates the tables if they don't exist yet; safe to run on every start.
func Migrate(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("run schema script: %w", err)
	}
	log.Infoln("database tables created successfully")
	return nil
}
