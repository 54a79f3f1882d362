package wpkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveStorePaths_Defaults(t *testing.T) {
	dir := t.TempDir()
	paths, warnings := ResolveStorePaths(dir)
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}
	if paths.Legacy != filepath.Join(dir, "legacy", "Cookies.db") {
		t.Fatalf("legacy = %q", paths.Legacy)
	}
	if paths.WebKit != filepath.Join(dir, "webkit", "Cookies.db") {
		t.Fatalf("webkit = %q", paths.WebKit)
	}
}

func TestResolveStorePaths_Redirect(t *testing.T) {
	dir := t.TempDir()
	alt := filepath.Join(dir, "alt", "Cookies.db")
	if err := os.MkdirAll(filepath.Dir(alt), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(alt, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	ini := "[legacy]\nPath=alt/Cookies.db\nIsRelative=1\n\n[webkit]\nPath=/missing/Cookies.db\nIsRelative=0\n"
	if err := os.WriteFile(filepath.Join(dir, "profiles.ini"), []byte(ini), 0o600); err != nil {
		t.Fatal(err)
	}

	paths, warnings := ResolveStorePaths(dir)
	if paths.Legacy != alt {
		t.Fatalf("legacy = %q, want %q", paths.Legacy, alt)
	}
	// A redirect to a missing file warns and keeps the default.
	if paths.WebKit != filepath.Join(dir, "webkit", "Cookies.db") {
		t.Fatalf("webkit = %q", paths.WebKit)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings: %v", warnings)
	}
}

func TestResolveStorePaths_MalformedINI(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "profiles.ini"), []byte("[legacy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	paths, warnings := ResolveStorePaths(dir)
	// Defaults still apply, but the broken file is reported.
	if paths.Legacy != filepath.Join(dir, "legacy", "Cookies.db") {
		t.Fatalf("legacy = %q", paths.Legacy)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "profiles.ini") {
		t.Fatalf("warnings: %v", warnings)
	}
}

func TestStorePathsStore(t *testing.T) {
	paths := StorePaths{Legacy: "a.db", WebKit: "b.db"}

	st, err := paths.Store(EngineLegacy)
	if err != nil {
		t.Fatal(err)
	}
	if st.Engine() != EngineLegacy {
		t.Fatalf("engine = %q", st.Engine())
	}

	st, err = paths.Store(EngineWebKit)
	if err != nil {
		t.Fatal(err)
	}
	if st.Engine() != EngineWebKit {
		t.Fatalf("engine = %q", st.Engine())
	}

	if _, err := paths.Store(Engine("flash")); err == nil {
		t.Fatalf("expected error for unknown engine")
	}
}
