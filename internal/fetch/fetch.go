package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/NicabarNimble/go-repofetch/internal/errors"
	"github.com/NicabarNimble/go-repofetch/internal/host"
	"github.com/NicabarNimble/go-repofetch/internal/logging"
	"github.com/NicabarNimble/go-repofetch/internal/redact"
	"github.com/NicabarNimble/go-repofetch/internal/urlutils"
)

const defaultTimeout = 10 * time.Minute

// Options contains configuration for a single repository fetch
type Options struct {
	RepoURL     string
	LocalPath   string
	Host        host.Type // defaults to host.Aone
	AccessToken string
	Logger      *logging.Logger // nil discards log output
	Context     context.Context // Context for cancellation/timeout
}

// Fetch ensures a shallow clone of the repository exists at LocalPath and
// returns the textual outcome: the clone's captured stdout, or a notice that
// a populated destination was reused. A populated destination always
// short-circuits the clone, so repeated calls are idempotent.
//
// Fetch performs no locking on LocalPath; two concurrent calls against the
// same destination race, and coordination is the caller's responsibility.
func Fetch(opts Options) (string, error) {
	ctx := opts.Context
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if opts.RepoURL == "" {
		return "", errors.New("fetch", errors.KindInvalidURL, fmt.Errorf("repository URL must be specified"))
	}

	hostType := opts.Host
	if hostType == "" {
		hostType = host.Aone
	}

	logger.Info().Str("path", opts.LocalPath).Msg("preparing to clone repository")

	if _, _, err := runGit(ctx, "--version"); err != nil {
		return "", wrap("fetch", errors.KindToolUnavailable,
			fmt.Errorf("git is not available: %w", err), opts.AccessToken)
	}

	populated, err := dirPopulated(opts.LocalPath)
	if err != nil {
		return "", wrap("fetch", errors.KindFilesystem, err, opts.AccessToken)
	}
	if populated {
		logger.Warn().Str("path", opts.LocalPath).Msg("repository already exists, using existing repository")
		return fmt.Sprintf("Using existing repository at %s", opts.LocalPath), nil
	}

	if err := os.MkdirAll(opts.LocalPath, 0o755); err != nil {
		return "", wrap("fetch", errors.KindFilesystem,
			fmt.Errorf("create destination: %w", err), opts.AccessToken)
	}

	cloneURL := opts.RepoURL
	if opts.AccessToken != "" {
		if host.Known(hostType) {
			logger.Info().Msg("using access token for authentication")
		} else {
			logger.Warn().Str("host", string(hostType)).Msg("no token rule for host type, token ignored")
		}
		cloneURL, err = host.CloneURL(opts.RepoURL, hostType, opts.AccessToken)
		if err != nil {
			return "", wrap("fetch", errors.KindInvalidURL, err, opts.AccessToken)
		}
	}

	// Log the original URL only; cloneURL may carry the token.
	logger.Info().
		Str("url", urlutils.Stripped(opts.RepoURL)).
		Str("path", opts.LocalPath).
		Msg("cloning repository")

	stdout, stderr, err := runGit(ctx, "clone", "--depth", "1", cloneURL, opts.LocalPath)
	if err != nil {
		msg := redact.Secrets(string(stderr), opts.AccessToken)
		return "", errors.New("clone", errors.KindCloneFailed,
			fmt.Errorf("error during cloning: %s", msg))
	}

	logger.Info().Msg("repository cloned successfully")
	return string(stdout), nil
}

// DownloadRepo is the historical name for Fetch, kept for callers of the
// original API.
//
// Deprecated: use Fetch.
func DownloadRepo(opts Options) (string, error) {
	return Fetch(opts)
}

// wrap builds the OperationError for a failure, scrubbing token material
// out of the message whenever a token was supplied.
func wrap(op string, kind errors.Kind, err error, token string) error {
	if token == "" || err == nil {
		return errors.New(op, kind, err)
	}
	return errors.New(op, kind, fmt.Errorf("%s", redact.Secrets(err.Error(), token)))
}

// dirPopulated reports whether path exists and contains at least one entry.
func dirPopulated(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return len(entries) > 0, nil
}

// runGit is a variable so it can be mocked in tests
var runGit = func(ctx context.Context, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_ASKPASS=")

	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}
