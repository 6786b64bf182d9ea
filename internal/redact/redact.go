// Package redact scrubs access-token material out of text before it reaches
// an error message or a log sink.
package redact

import "strings"

const (
	partPlaceholder  = "***TOKEN_PART***"
	tokenPlaceholder = "***TOKEN***"
)

// Secrets replaces every occurrence of token in msg with a fixed placeholder.
// Colon-delimited tokens are split on the first colon and each part is
// replaced independently, since git tends to surface the two halves
// separately in its output. Replacement is best-effort literal substitution;
// fragments reformatted by git itself are not caught.
func Secrets(msg, token string) string {
	if token == "" {
		return msg
	}
	if user, secret, ok := strings.Cut(token, ":"); ok {
		for _, part := range []string{user, secret} {
			if part != "" {
				msg = strings.ReplaceAll(msg, part, partPlaceholder)
			}
		}
		return msg
	}
	return strings.ReplaceAll(msg, token, tokenPlaceholder)
}
