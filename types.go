package wpkit

import "time"

// Engine identifies which webview engine owns a cookie store.
type Engine string

const (
	// EngineLegacy is the old webview engine's cookie store.
	EngineLegacy Engine = "legacy"
	// EngineWebKit is the new webview engine's cookie store.
	EngineWebKit Engine = "webkit"
)

// LoggedInCookieName is the name of the session cookie the service sets for an
// authenticated user. Its value encodes the username as the first %-delimited
// segment.
const LoggedInCookieName = "wordpress_logged_in"

// Source describes where a cookie came from.
type Source struct {
	Engine    Engine
	StorePath string
}

// Cookie is a webview cookie record.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool

	Expires *time.Time
	Source  Source
}
