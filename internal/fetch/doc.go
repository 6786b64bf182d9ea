// Package fetch implements the repository fetch operation: ensuring a
// shallow clone of a remote repository exists at a local path.
//
// The operation runs in sequence: probe the git CLI, reuse the destination
// if it is already populated, create it otherwise, build the effective
// clone URL (embedding an access token for host types that define a
// rewrite rule), and run a depth-1 clone.
//
// Key Components:
//
// Options: Configuration struct for a single fetch. Carries the source
// URL, destination path, host type, optional access token, an injected
// logger, and an optional context.
//
// Fetch: Main entry point. Returns the clone's captured output (or a
// reuse notice) and a classified *errors.OperationError on failure.
//
// Example Usage:
//
//	out, err := fetch.Fetch(fetch.Options{
//	    RepoURL:     "https://code.example.com/org/repo.git",
//	    LocalPath:   "/path/to/workspace/repo",
//	    Host:        host.Aone,
//	    AccessToken: "account:private-token",
//	    Logger:      logger,
//	})
//
// Error Handling:
//
// Failures carry a Kind discriminating tool availability, filesystem,
// URL parsing, and clone-process errors. When a token was supplied, its
// material is scrubbed from every error message before it is returned.
// Log lines only ever carry the original URL, never the token-bearing one.
//
// Thread Safety:
//
// Fetch performs no coordination between callers. Operations on the same
// destination path from multiple goroutines race; callers must serialize.
package fetch
