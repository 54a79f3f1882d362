package wpkit

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	legacyKeyService = "wpkit-webview"
	legacyKeyAccount = "legacy-engine"

	// EnvLegacyStorePassword overrides the keyring lookup for the legacy
	// store's encryption password. Escape hatch for headless use and CI.
	EnvLegacyStorePassword = "WPKIT_LEGACY_STORE_PASSWORD"
)

// legacyStorePassword resolves the password protecting legacy-store cookie
// values. An empty password is valid: stores written before encryption was
// enabled derive their key from "".
func legacyStorePassword() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvLegacyStorePassword)); override != "" {
		return override, nil
	}

	pw, err := keyring.Get(legacyKeyService, legacyKeyAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(pw), nil
}
