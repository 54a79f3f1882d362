// Package wpkit provides client-side session helpers for a WordPress-style
// blogging service. Its core is a cookie jar that unifies cookie lookup and
// removal across the two webview-engine cookie stores the client uses while
// migrating engines: the legacy engine's sqlite store (with encrypted values)
// and the new engine's plaintext sqlite store.
package wpkit
