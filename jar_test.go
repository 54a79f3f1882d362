package wpkit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	mu       sync.Mutex
	cookies  []Cookie
	listErr  error
	delErr   error
	delDelay time.Duration
	deleted  []string
}

func (s *fakeStore) Engine() Engine { return EngineWebKit }

func (s *fakeStore) List(_ context.Context) ([]Cookie, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]Cookie(nil), s.cookies...), nil
}

func (s *fakeStore) Delete(_ context.Context, c Cookie) error {
	if s.delDelay > 0 {
		time.Sleep(s.delDelay)
	}
	if s.delErr != nil {
		return s.delErr
	}
	s.mu.Lock()
	s.deleted = append(s.deleted, c.Name)
	s.mu.Unlock()
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJarCookies_FiltersByURL(t *testing.T) {
	store := &fakeStore{cookies: []Cookie{
		{Name: "sid", Value: "1", Domain: "example.com", Path: "/"},
		{Name: "sid", Value: "2", Domain: "other.com", Path: "/"},
		{Name: "admin", Value: "3", Domain: "example.com", Path: "/wp-admin"},
	}}
	jar := NewJar(store, WithLogger(quietLogger()))

	got, err := jar.Cookies(context.Background(), "https://example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "sid" || got[0].Value != "1" {
		t.Fatalf("unexpected cookies: %#v", got)
	}
}

func TestJarCookies_BadURL(t *testing.T) {
	jar := NewJar(&fakeStore{}, WithLogger(quietLogger()))
	if _, err := jar.Cookies(context.Background(), "not a url"); !errors.Is(err, ErrBadURL) {
		t.Fatalf("err = %v, want ErrBadURL", err)
	}
}

func TestJarCookies_StoreError(t *testing.T) {
	sentinel := errors.New("store broken")
	jar := NewJar(&fakeStore{listErr: sentinel}, WithLogger(quietLogger()))
	if _, err := jar.Cookies(context.Background(), "https://example.com/"); !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want store error", err)
	}
}

func TestJarHasLoggedInCookie(t *testing.T) {
	store := &fakeStore{cookies: []Cookie{
		{Name: LoggedInCookieName, Value: "maria%7Cabc", Domain: "example.com", Path: "/"},
	}}
	jar := NewJar(store, WithLogger(quietLogger()))

	ok, err := jar.HasLoggedInCookie(context.Background(), "https://example.com/", "maria")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected logged-in cookie for maria")
	}

	ok, err = jar.HasLoggedInCookie(context.Background(), "https://example.com/", "pedro")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected no logged-in cookie for pedro")
	}

	// Same cookie at a different host is invisible.
	ok, err = jar.HasLoggedInCookie(context.Background(), "https://other.com/", "maria")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected no match at other host")
	}
}

func TestJarRemoveForUser(t *testing.T) {
	store := &fakeStore{cookies: []Cookie{
		{Name: LoggedInCookieName, Value: "maria%7Cabc", Domain: "example.com", Path: "/"},
		{Name: LoggedInCookieName, Value: "pedro%7Cdef", Domain: "example.com", Path: "/blog"},
		{Name: "unrelated", Value: "x", Domain: "example.com", Path: "/"},
	}}
	jar := NewJar(store, WithLogger(quietLogger()))

	if err := jar.RemoveForUser(context.Background(), "https://example.com/", "maria"); err != nil {
		t.Fatal(err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != LoggedInCookieName {
		t.Fatalf("unexpected deletions: %v", store.deleted)
	}
}

func TestJarRemoveCookies_TimeoutProceeds(t *testing.T) {
	store := &fakeStore{delDelay: 200 * time.Millisecond}
	jar := NewJar(store, WithLogger(quietLogger()), WithRemoveWait(20*time.Millisecond))

	start := time.Now()
	err := jar.RemoveCookies(context.Background(), []Cookie{
		{Name: "a", Domain: "example.com", Path: "/"},
		{Name: "b", Domain: "example.com", Path: "/"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Fatalf("remove did not proceed after timeout (took %v)", elapsed)
	}
}

func TestJarRemoveCookies_DeleteErrorsNotReturned(t *testing.T) {
	store := &fakeStore{delErr: errors.New("delete failed")}
	jar := NewJar(store, WithLogger(quietLogger()))

	err := jar.RemoveCookies(context.Background(), []Cookie{
		{Name: "a", Domain: "example.com", Path: "/"},
	})
	if err != nil {
		t.Fatalf("per-cookie failures should be logged, not returned: %v", err)
	}
}

func TestJarRemoveCookies_Empty(t *testing.T) {
	jar := NewJar(&fakeStore{}, WithLogger(quietLogger()))
	if err := jar.RemoveCookies(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
}

func TestJarRemoveCookies_ContextCancelled(t *testing.T) {
	store := &fakeStore{delDelay: 500 * time.Millisecond}
	jar := NewJar(store, WithLogger(quietLogger()), WithRemoveWait(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := jar.RemoveCookies(ctx, []Cookie{{Name: "a", Domain: "example.com", Path: "/"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
