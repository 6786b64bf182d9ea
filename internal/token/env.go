// Package token resolves access tokens for repository hosts from the
// environment.
//
// Tokens are read from GIT_TOKEN_* variables keyed by host type:
//
//	export GIT_TOKEN_AONE="account:private-token"
//
// This is lookup only. Nothing is written or persisted, so tokens live
// exactly as long as the environment that carries them, which keeps the
// tool usable in headless and containerized setups without a keychain.
package token

import (
	"os"
	"strings"
)

// EnvPrefix is the prefix used for all token environment variables
const EnvPrefix = "GIT_TOKEN_"

// FromEnv returns the access token configured for the given host key, if
// any. The key is upper-cased and dashes become underscores, so host type
// "aone" resolves GIT_TOKEN_AONE.
func FromEnv(key string) (string, bool) {
	name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	v := os.Getenv(name)
	if v == "" {
		return "", false
	}
	return v, true
}
