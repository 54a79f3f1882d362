package wpkit

import (
	"crypto/aes"
	"crypto/cipher"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestSQLite(t *testing.T, path string) *sql.DB {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path)+"?mode=rwc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createLegacyFixture(t *testing.T, path string) *sql.DB {
	t.Helper()
	db := openTestSQLite(t, path)
	if _, err := db.Exec(`CREATE TABLE cookies (
		host_key TEXT NOT NULL,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		value TEXT NOT NULL DEFAULT '',
		encrypted_value BLOB NOT NULL DEFAULT X'',
		expires_utc INTEGER NOT NULL DEFAULT 0,
		is_secure INTEGER NOT NULL DEFAULT 0,
		is_httponly INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		t.Fatal(err)
	}
	return db
}

func insertLegacyCookie(t *testing.T, db *sql.DB, hostKey, name, path, value string, encrypted []byte, secure bool) {
	t.Helper()
	sec := 0
	if secure {
		sec = 1
	}
	if encrypted == nil {
		encrypted = []byte{}
	}
	if _, err := db.Exec(
		`INSERT INTO cookies (host_key, name, path, value, encrypted_value, is_secure) VALUES (?, ?, ?, ?, ?, ?)`,
		hostKey, name, path, value, encrypted, sec); err != nil {
		t.Fatal(err)
	}
}

func createWebKitFixture(t *testing.T, path string) *sql.DB {
	t.Helper()
	db := openTestSQLite(t, path)
	if _, err := db.Exec(`CREATE TABLE wk_cookies (
		host TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		path TEXT NOT NULL,
		expiry INTEGER NOT NULL DEFAULT 0,
		is_secure INTEGER NOT NULL DEFAULT 0,
		is_httponly INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		t.Fatal(err)
	}
	return db
}

func insertWebKitCookie(t *testing.T, db *sql.DB, host, name, value, path string, secure bool) {
	t.Helper()
	sec := 0
	if secure {
		sec = 1
	}
	if _, err := db.Exec(
		`INSERT INTO wk_cookies (host, name, value, path, is_secure) VALUES (?, ?, ?, ?, ?)`,
		host, name, value, path, sec); err != nil {
		t.Fatal(err)
	}
}

func pkcs7Pad(t *testing.T, b []byte) []byte {
	t.Helper()
	paddingLen := aes.BlockSize - (len(b) % aes.BlockSize)
	if paddingLen == 0 {
		paddingLen = aes.BlockSize
	}
	out := make([]byte, 0, len(b)+paddingLen)
	out = append(out, b...)
	for i := 0; i < paddingLen; i++ {
		out = append(out, byte(paddingLen))
	}
	return out
}

func encryptLegacyForTest(t *testing.T, key []byte, plaintext []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	padded := pkcs7Pad(t, plaintext)
	ciphertext := make([]byte, len(padded))
	cbc := cipher.NewCBCEncrypter(block, []byte(legacyAESIV))
	cbc.CryptBlocks(ciphertext, padded)
	return append([]byte(legacyValuePrefix), ciphertext...)
}
