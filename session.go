package wpkit

import "strings"

// isLoggedInCookie reports whether c is the service's session cookie for the
// given username.
func isLoggedInCookie(c Cookie, username string) bool {
	if username == "" {
		return false
	}
	u, ok := CookieUsername(c)
	return ok && u == username
}

// CookieUsername extracts the username encoded in a logged-in cookie's value.
// It returns false for any other cookie.
func CookieUsername(c Cookie) (string, bool) {
	if c.Name != LoggedInCookieName || c.Value == "" {
		return "", false
	}
	return strings.SplitN(c.Value, "%", 2)[0], true
}
