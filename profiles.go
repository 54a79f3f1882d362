package wpkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

// StorePaths holds the resolved cookie DB locations for both engines.
type StorePaths struct {
	Legacy string
	WebKit string
}

// ResolveStorePaths locates both engines' cookie stores under the app data
// directory. A profiles.ini file there may redirect either engine's store;
// otherwise the conventional per-engine layout is assumed. Warnings report
// a malformed profiles.ini and redirects that point at missing files.
func ResolveStorePaths(dataDir string) (StorePaths, []string) {
	paths := StorePaths{
		Legacy: filepath.Join(dataDir, "legacy", "Cookies.db"),
		WebKit: filepath.Join(dataDir, "webkit", "Cookies.db"),
	}

	var warnings []string
	iniPath := filepath.Join(dataDir, "profiles.ini")
	cfg, err := ini.Load(iniPath)
	if err != nil {
		// A missing file just means no redirects; a file that exists but
		// fails to parse should not pass silently.
		if fileExists(iniPath) {
			warnings = append(warnings, fmt.Sprintf("wpkit: malformed %s: %v", iniPath, err))
		}
		return paths, warnings
	}
	for _, engine := range []Engine{EngineLegacy, EngineWebKit} {
		sec := cfg.Section(string(engine))
		pathStr := filepath.FromSlash(sec.Key("Path").String())
		if pathStr == "" {
			continue
		}
		if sec.Key("IsRelative").String() == "1" {
			pathStr = filepath.Join(dataDir, pathStr)
		}
		if !fileExists(pathStr) {
			warnings = append(warnings, fmt.Sprintf("wpkit: %s store redirect %q not found", engine, pathStr))
			continue
		}
		switch engine {
		case EngineLegacy:
			paths.Legacy = pathStr
		case EngineWebKit:
			paths.WebKit = pathStr
		}
	}
	return paths, warnings
}

// Store returns the backend for the requested engine.
func (p StorePaths) Store(engine Engine) (Store, error) {
	switch engine {
	case EngineLegacy:
		return NewLegacyStore(p.Legacy), nil
	case EngineWebKit:
		return NewWebKitStore(p.WebKit), nil
	default:
		return nil, fmt.Errorf("wpkit: unknown engine %q", strings.TrimSpace(string(engine)))
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
