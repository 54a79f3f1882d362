package wpkit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// The engine stores delete cookies one at a time; removal fans out and joins
// with a bounded wait so a wedged store cannot hang a logout.
const defaultRemoveWait = 2 * time.Second

// Jar provides cookie lookup and removal over one engine's store.
type Jar struct {
	store      Store
	log        *slog.Logger
	removeWait time.Duration
}

// JarOption configures a Jar.
type JarOption func(*Jar)

// WithLogger sets the logger used for removal warnings.
func WithLogger(l *slog.Logger) JarOption {
	return func(j *Jar) {
		if l != nil {
			j.log = l
		}
	}
}

// WithRemoveWait overrides how long RemoveCookies waits for store deletes to
// finish before proceeding.
func WithRemoveWait(d time.Duration) JarOption {
	return func(j *Jar) {
		if d > 0 {
			j.removeWait = d
		}
	}
}

// NewJar returns a jar over the given engine store.
func NewJar(store Store, opts ...JarOption) *Jar {
	j := &Jar{
		store:      store,
		log:        slog.Default(),
		removeWait: defaultRemoveWait,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Engine reports which webview engine the jar is backed by.
func (j *Jar) Engine() Engine { return j.store.Engine() }

// Cookies returns the store's cookies that apply to rawURL.
func (j *Jar) Cookies(ctx context.Context, rawURL string) ([]Cookie, error) {
	t, err := parseTarget(rawURL)
	if err != nil {
		return nil, err
	}

	all, err := j.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []Cookie
	for _, c := range dedupeCookies(all) {
		if cookieMatchesTarget(c, t) {
			out = append(out, c)
		}
	}
	return out, nil
}

// HasLoggedInCookie reports whether the store holds a session cookie for
// username that applies to rawURL.
func (j *Jar) HasLoggedInCookie(ctx context.Context, rawURL, username string) (bool, error) {
	cookies, err := j.Cookies(ctx, rawURL)
	if err != nil {
		return false, err
	}
	for _, c := range cookies {
		if isLoggedInCookie(c, username) {
			return true, nil
		}
	}
	return false, nil
}

// RemoveCookies deletes the given cookies from the store. Deletes run
// concurrently; the jar waits up to its remove-wait for them to finish, then
// proceeds regardless, logging a warning on timeout. Individual delete
// failures are logged, not returned.
func (j *Jar) RemoveCookies(ctx context.Context, cookies []Cookie) error {
	if len(cookies) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for _, c := range cookies {
		wg.Add(1)
		go func(c Cookie) {
			defer wg.Done()
			if err := j.store.Delete(ctx, c); err != nil {
				j.log.Warn("cookie delete failed",
					"engine", j.store.Engine(),
					"name", c.Name,
					"domain", c.Domain,
					"err", err)
			}
		}(c)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(j.removeWait):
		j.log.Warn("cookie removal timed out, continuing",
			"engine", j.store.Engine(),
			"count", len(cookies),
			"wait", j.removeWait)
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// RemoveForUser deletes every session cookie for username that applies to
// rawURL.
func (j *Jar) RemoveForUser(ctx context.Context, rawURL, username string) error {
	cookies, err := j.Cookies(ctx, rawURL)
	if err != nil {
		return err
	}

	var matched []Cookie
	for _, c := range cookies {
		if isLoggedInCookie(c, username) {
			matched = append(matched, c)
		}
	}
	return j.RemoveCookies(ctx, matched)
}
