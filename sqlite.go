package wpkit

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver (pure Go).
)

// openSnapshotReadOnly copies a live cookie DB (and WAL sidecars, if any) into
// a tempdir so reads never contend with the owning engine.
func openSnapshotReadOnly(dbPath string) (snapshotPath string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "wpkit-cookies-")
	if err != nil {
		return "", nil, err
	}
	cleanup = func() { _ = os.RemoveAll(dir) }

	target := filepath.Join(dir, filepath.Base(dbPath))
	if err := snapshotFile(dbPath, target, true); err != nil {
		cleanup()
		return "", nil, err
	}

	// If WAL mode is enabled, recent writes may live in sidecars.
	for _, ext := range []string{"-wal", "-shm"} {
		_ = snapshotFile(dbPath+ext, target+ext, false)
	}

	return target, cleanup, nil
}

// snapshotFile copies src to dst. A missing source is an error only when
// required; optional sidecars simply may not exist.
func snapshotFile(src, dst string, required bool) error {
	in, err := os.Open(src)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func openCookieDB(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	mode := "rw"
	if readOnly {
		mode = "ro"
	}
	dsn := "file:" + filepath.ToSlash(path) + "?mode=" + mode
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
