package wpkit

import (
	"errors"
	"net/url"
	"strings"
)

// ErrBadURL is returned when a jar operation is given a URL without a scheme
// or host.
var ErrBadURL = errors.New("wpkit: URL must include scheme and host")

type target struct {
	scheme string
	host   string
	path   string
}

func parseTarget(rawURL string) (target, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return target{}, err
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return target{}, ErrBadURL
	}
	return target{
		scheme: strings.ToLower(u.Scheme),
		host:   normalizeHost(u.Hostname()),
		path:   normalizePath(u.EscapedPath()),
	}, nil
}

// cookieMatchesTarget reports whether a cookie applies to the target URL:
// the cookie domain equals the URL host, the URL path has the cookie path as
// a prefix, and a Secure cookie is only served over https.
func cookieMatchesTarget(c Cookie, t target) bool {
	if c.Domain == "" || t.host == "" {
		return false
	}
	if normalizeHost(c.Domain) != t.host {
		return false
	}
	if c.Secure && t.scheme != "https" {
		return false
	}
	return strings.HasPrefix(t.path, normalizePath(c.Path))
}

func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, ".")
	return strings.ToLower(host)
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path[0] != '/' {
		return "/"
	}
	return path
}
