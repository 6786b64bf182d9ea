// Package urlutils provides utilities for handling credentials in repository
// URLs: embedding an access token as the userinfo component and stripping
// credentials back out for display.
package urlutils

import (
	"net/url"
	"strings"
)

// WithToken returns a copy of u with the token embedded as the userinfo
// component. Colon-delimited tokens become a user:password pair so the
// serialized URL keeps the literal "user:secret@host" form instead of a
// percent-encoded username. Any existing credentials, query, and fragment
// are cleared; scheme, host, and path are preserved. The original URL is
// not modified.
func WithToken(u *url.URL, token string) *url.URL {
	tokenURL := *u
	if user, secret, ok := strings.Cut(token, ":"); ok {
		tokenURL.User = url.UserPassword(user, secret)
	} else {
		tokenURL.User = url.User(token)
	}
	tokenURL.RawQuery = ""
	tokenURL.Fragment = ""
	tokenURL.RawFragment = ""
	return &tokenURL
}

// Stripped returns rawURL with any userinfo component removed, for use in
// log output. The input is returned unchanged if it does not parse.
func Stripped(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if u.User == nil {
		return rawURL
	}
	u.User = nil
	return u.String()
}
