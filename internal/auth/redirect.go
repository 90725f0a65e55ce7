package auth

import (
	"context"
	"net/url"
)

// ExtractSessionID pulls the one-time session id out of a redirect URL.
// The id may arrive in the fragment (#session_id=...) or the query
// (?session_id=...); the fragment wins when both are present because the
// fragment never transits intermediaries. Returns "" when absent.
func ExtractSessionID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	if u.Fragment != "" {
		if vals, err := url.ParseQuery(u.Fragment); err == nil {
			if id := vals.Get("session_id"); id != "" {
				return id
			}
		}
	}

	return u.Query().Get("session_id")
}

// stripSessionArtifact removes the session id from both the fragment and
// the query so the one-time artifact never lingers in a visible location
// or browser history.
func stripSessionArtifact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	if u.Fragment != "" {
		if vals, err := url.ParseQuery(u.Fragment); err == nil && vals.Get("session_id") != "" {
			vals.Del("session_id")
			u.Fragment = vals.Encode()
		}
	}

	q := u.Query()
	if q.Get("session_id") != "" {
		q.Del("session_id")
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// RedirectStrategy abstracts how the login round-trip to the auth service
// happens. Browser-hosted flows navigate away and come back; interactive
// flows block until the callback URL is known.
type RedirectStrategy interface {
	// Begin starts the login flow against authURL, asking it to redirect
	// back to appURL. It returns the callback URL when the flow resolves
	// synchronously, or "" when the redirect lands back asynchronously.
	Begin(ctx context.Context, authURL, appURL string) (string, error)

	// StripArtifact returns the location with the session artifact removed.
	StripArtifact(rawURL string) string
}

// BrowserRedirect points the user agent at the auth service and returns
// immediately; the session id arrives later via HandleRedirect. Relocate,
// when set, is used to replace the visible location after the artifact is
// consumed.
type BrowserRedirect struct {
	Navigate func(targetURL string) error
	Relocate func(cleanURL string)
}

func (b *BrowserRedirect) Begin(ctx context.Context, authURL, appURL string) (string, error) {
	target := authURL + "?redirect=" + url.QueryEscape(appURL)
	return "", b.Navigate(target)
}

func (b *BrowserRedirect) StripArtifact(rawURL string) string {
	clean := stripSessionArtifact(rawURL)
	if b.Relocate != nil {
		b.Relocate(clean)
	}
	return clean
}

// InteractiveRedirect runs the whole login round-trip through an injected
// opener (a local listener, a paste prompt) and hands the resulting
// callback URL straight back for exchange.
type InteractiveRedirect struct {
	Open func(ctx context.Context, targetURL string) (string, error)
}

func (i *InteractiveRedirect) Begin(ctx context.Context, authURL, appURL string) (string, error) {
	target := authURL + "?redirect=" + url.QueryEscape(appURL)
	return i.Open(ctx, target)
}

func (i *InteractiveRedirect) StripArtifact(rawURL string) string {
	return stripSessionArtifact(rawURL)
}
