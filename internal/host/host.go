// Package host models the closed set of repository hosting services the
// fetcher knows how to authenticate against. Each host type maps to one
// clone-URL rewrite rule; adding a host is a new table entry.
package host

import (
	"fmt"
	"net/url"

	"github.com/NicabarNimble/go-repofetch/internal/urlutils"
)

// Type identifies a repository hosting service.
type Type string

// Aone is the Alibaba-internal hosting service. Tokens take the
// "account:private-token" form and are embedded as URL userinfo.
const Aone Type = "aone"

// rewrite builds a token-bearing clone URL for one hosting service.
type rewrite func(u *url.URL, token string) *url.URL

// rewrites maps each host type to its clone-URL rule. Hosts without an
// entry accept a token but never embed it.
var rewrites = map[Type]rewrite{
	Aone: func(u *url.URL, token string) *url.URL {
		return urlutils.WithToken(u, token)
	},
}

// Known reports whether t has a defined rewrite rule.
func Known(t Type) bool {
	_, ok := rewrites[t]
	return ok
}

// CloneURL returns the effective clone URL for rawURL on host t. Without a
// token, or for a host with no rewrite rule, rawURL is returned unchanged
// byte for byte.
func CloneURL(rawURL string, t Type, token string) (string, error) {
	if token == "" {
		return rawURL, nil
	}
	fn, ok := rewrites[t]
	if !ok {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse repository URL: %w", err)
	}
	return fn(u, token).String(), nil
}
