package errors

import "fmt"

// Kind classifies a fetch failure. The set is closed; callers switch on the
// kind instead of parsing message text.
type Kind int

const (
	// KindUnknown is the zero value and matches any kind in Is.
	KindUnknown Kind = iota

	// KindToolUnavailable indicates the git CLI could not be invoked.
	KindToolUnavailable

	// KindFilesystem indicates a destination directory check or creation failed.
	KindFilesystem

	// KindInvalidURL indicates the repository URL could not be parsed.
	KindInvalidURL

	// KindCloneFailed indicates the clone subprocess exited non-zero.
	KindCloneFailed
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindToolUnavailable:
		return "tool-unavailable"
	case KindFilesystem:
		return "filesystem"
	case KindInvalidURL:
		return "invalid-url"
	case KindCloneFailed:
		return "clone-failed"
	default:
		return "unknown"
	}
}

// OperationError represents an error that occurred during a fetch operation
type OperationError struct {
	Op   string // The operation being performed
	Kind Kind   // The failure classification
	Err  error  // The underlying error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// New creates a new OperationError
func New(op string, kind Kind, err error) *OperationError {
	return &OperationError{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// Is implements error matching for OperationError. An empty Op or a
// KindUnknown kind on the target acts as a wildcard.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Kind == KindUnknown || t.Kind == e.Kind
}
