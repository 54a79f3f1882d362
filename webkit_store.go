package wpkit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// WebKitStore reads and deletes cookies in the new webview engine's sqlite
// store. Values are plaintext; expiry is unix seconds.
type WebKitStore struct {
	dbPath string
}

// NewWebKitStore returns a store over the webkit engine's cookie DB at dbPath.
func NewWebKitStore(dbPath string) *WebKitStore {
	return &WebKitStore{dbPath: dbPath}
}

// Engine implements Store.
func (s *WebKitStore) Engine() Engine { return EngineWebKit }

// List implements Store.
func (s *WebKitStore) List(ctx context.Context) ([]Cookie, error) {
	snap, cleanup, err := openSnapshotReadOnly(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("wpkit: snapshot webkit cookie store: %w", err)
	}
	defer cleanup()

	db, err := openCookieDB(ctx, snap, true)
	if err != nil {
		return nil, fmt.Errorf("wpkit: open webkit cookie store: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx,
		`SELECT host, name, value, path, expiry, is_secure, is_httponly FROM wk_cookies ORDER BY expiry DESC`)
	if err != nil {
		return nil, fmt.Errorf("wpkit: read webkit cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Cookie
	for rows.Next() {
		var (
			host, name, value, path string
			expiry                  sql.NullInt64
			secure, httpOnly        sql.NullInt64
		)
		if err := rows.Scan(&host, &name, &value, &path, &expiry, &secure, &httpOnly); err != nil {
			return nil, err
		}
		if name == "" || host == "" || value == "" {
			continue
		}

		c := Cookie{
			Name:     name,
			Value:    value,
			Domain:   strings.TrimPrefix(host, "."),
			Path:     path,
			Secure:   secure.Valid && secure.Int64 == 1,
			HTTPOnly: httpOnly.Valid && httpOnly.Int64 == 1,
			Source: Source{
				Engine:    EngineWebKit,
				StorePath: s.dbPath,
			},
		}
		if c.Path == "" {
			c.Path = "/"
		}
		if expiry.Valid && expiry.Int64 > 0 {
			t := time.Unix(expiry.Int64, 0).UTC()
			c.Expires = &t
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete implements Store.
func (s *WebKitStore) Delete(ctx context.Context, c Cookie) error {
	db, err := openCookieDB(ctx, s.dbPath, false)
	if err != nil {
		return fmt.Errorf("wpkit: open webkit cookie store: %w", err)
	}
	defer func() { _ = db.Close() }()

	domain := normalizeHost(c.Domain)
	_, err = db.ExecContext(ctx,
		`DELETE FROM wk_cookies WHERE (host = ? OR host = ?) AND name = ? AND path = ?`,
		domain, "."+domain, c.Name, c.Path)
	if err != nil {
		return fmt.Errorf("wpkit: delete webkit cookie %q: %w", c.Name, err)
	}
	return nil
}
