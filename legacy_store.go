package wpkit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// LegacyStore reads and deletes cookies in the legacy webview engine's sqlite
// store. The schema holds cookie values either in plaintext (`value`) or
// encrypted (`encrypted_value`); rows that cannot be decrypted are skipped.
type LegacyStore struct {
	dbPath string

	keyOnce sync.Once
	key     []byte
	keyErr  error
}

// NewLegacyStore returns a store over the legacy engine's cookie DB at dbPath.
func NewLegacyStore(dbPath string) *LegacyStore {
	return &LegacyStore{dbPath: dbPath}
}

// Engine implements Store.
func (s *LegacyStore) Engine() Engine { return EngineLegacy }

func (s *LegacyStore) aesKey() ([]byte, error) {
	s.keyOnce.Do(func() {
		password, err := legacyStorePassword()
		if err != nil {
			s.keyErr = fmt.Errorf("wpkit: legacy store password: %w", err)
			return
		}
		s.key = deriveLegacyKey(password)
	})
	return s.key, s.keyErr
}

// List implements Store. Reads go through a tempdir snapshot so the engine's
// own writes are never blocked.
func (s *LegacyStore) List(ctx context.Context) ([]Cookie, error) {
	snap, cleanup, err := openSnapshotReadOnly(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("wpkit: snapshot legacy cookie store: %w", err)
	}
	defer cleanup()

	db, err := openCookieDB(ctx, snap, true)
	if err != nil {
		return nil, fmt.Errorf("wpkit: open legacy cookie store: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, strings.Join([]string{
		`SELECT host_key, name, path, value, encrypted_value, expires_utc, is_secure, is_httponly`,
		`FROM cookies`,
		`ORDER BY expires_utc DESC`,
	}, " "))
	if err != nil {
		return nil, fmt.Errorf("wpkit: read legacy cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	key, keyErr := s.aesKey()

	var out []Cookie
	for rows.Next() {
		var (
			hostKey, name, path, value string
			encrypted                  []byte
			expires                    sql.NullInt64
			secure, httpOnly           sql.NullInt64
		)
		if err := rows.Scan(&hostKey, &name, &path, &value, &encrypted, &expires, &secure, &httpOnly); err != nil {
			return nil, err
		}

		if value == "" && len(encrypted) > 0 && keyErr == nil {
			if plain, err := decryptLegacyValue(encrypted, key); err == nil {
				if decoded, ok := decodeCookieValue(plain); ok {
					value = decoded
				}
			}
		}
		if name == "" || hostKey == "" || value == "" {
			continue
		}

		c := Cookie{
			Name:     name,
			Value:    value,
			Domain:   strings.TrimPrefix(hostKey, "."),
			Path:     path,
			Secure:   secure.Valid && secure.Int64 == 1,
			HTTPOnly: httpOnly.Valid && httpOnly.Int64 == 1,
			Source: Source{
				Engine:    EngineLegacy,
				StorePath: s.dbPath,
			},
		}
		if c.Path == "" {
			c.Path = "/"
		}
		if expires.Valid {
			if t, ok := legacyExpiresToTime(expires.Int64); ok {
				c.Expires = &t
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete implements Store. Deletes touch the live DB, not a snapshot.
func (s *LegacyStore) Delete(ctx context.Context, c Cookie) error {
	db, err := openCookieDB(ctx, s.dbPath, false)
	if err != nil {
		return fmt.Errorf("wpkit: open legacy cookie store: %w", err)
	}
	defer func() { _ = db.Close() }()

	domain := normalizeHost(c.Domain)
	_, err = db.ExecContext(ctx,
		`DELETE FROM cookies WHERE (host_key = ? OR host_key = ?) AND name = ? AND path = ?`,
		domain, "."+domain, c.Name, c.Path)
	if err != nil {
		return fmt.Errorf("wpkit: delete legacy cookie %q: %w", c.Name, err)
	}
	return nil
}

func legacyExpiresToTime(expiresUTC int64) (time.Time, bool) {
	// The legacy engine stores times as microseconds since 1601-01-01 UTC.
	const unixEpochDiffMicros = int64(11644473600000000)
	unixMicros := expiresUTC - unixEpochDiffMicros
	if unixMicros <= 0 {
		return time.Time{}, false
	}
	return time.Unix(0, unixMicros*1000).UTC(), true
}
