//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/infra/db"
	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// createDatabase makes a fresh database on srv, migrates and seeds it, and
// drops it when the test finishes.
func createDatabase(t *testing.T, srv postgresServer) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "jewelry_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, adminExec(srv, "CREATE DATABASE "+name, 5), "create test database")
	t.Cleanup(func() {
		if err := adminExec(srv, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)", 1); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     srv.Host,
		Port:     srv.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
		MaxConns: 10,
	}
	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(cleanup)

	require.NoError(t, migrate(pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")
	return pool, cfg
}

// adminExec runs stmt against the maintenance database. CREATE DATABASE
// can collide with template1 being in use right after startup, hence the retries.
func adminExec(srv postgresServer, stmt string, attempts int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, srv.dsn("postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()

	for i := range attempts {
		if _, err = admin.Exec(ctx, stmt); err == nil {
			return nil
		}
		wait := min(time.Duration(i+1)*500*time.Millisecond, 3*time.Second)
		slog.Warn("admin statement failed, retrying", "attempt", i+1, "wait", wait, "error", err.Error())
		time.Sleep(wait)
	}
	return err
}

// migrate applies migrations/*.sql in lexical order.
func migrate(pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no migrations found under " + root)
	}
	slices.Sort(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// moduleRoot walks up from the package directory `go test` runs in.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above working directory")
		}
		dir = parent
	}
}
