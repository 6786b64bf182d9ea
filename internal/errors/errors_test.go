package errors

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "clone",
			err:      errors.New("repository not found"),
			expected: "clone: repository not found",
		},
		{
			name:     "without underlying error",
			op:       "fetch",
			err:      nil,
			expected: "fetch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opErr := &OperationError{
				Op:  tt.op,
				Err: tt.err,
			}
			if got := opErr.Error(); got != tt.expected {
				t.Errorf("OperationError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	opErr := &OperationError{
		Op:   "clone",
		Kind: KindCloneFailed,
		Err:  underlying,
	}

	if got := opErr.Unwrap(); got != underlying {
		t.Errorf("OperationError.Unwrap() = %v, want %v", got, underlying)
	}

	if !errors.Is(opErr, underlying) {
		t.Error("errors.Is should match the underlying error through Unwrap")
	}
}

func TestOperationError_Is(t *testing.T) {
	err := New("clone", KindCloneFailed, errors.New("exit status 128"))

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{
			name:   "same op and kind",
			target: &OperationError{Op: "clone", Kind: KindCloneFailed},
			want:   true,
		},
		{
			name:   "kind wildcard",
			target: &OperationError{Op: "clone"},
			want:   true,
		},
		{
			name:   "op wildcard",
			target: &OperationError{Kind: KindCloneFailed},
			want:   true,
		},
		{
			name:   "different kind",
			target: &OperationError{Op: "clone", Kind: KindFilesystem},
			want:   false,
		},
		{
			name:   "different op",
			target: &OperationError{Op: "fetch", Kind: KindCloneFailed},
			want:   false,
		},
		{
			name:   "not an OperationError",
			target: errors.New("clone"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindToolUnavailable, "tool-unavailable"},
		{KindFilesystem, "filesystem"},
		{KindInvalidURL, "invalid-url"},
		{KindCloneFailed, "clone-failed"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
		}
	}
}
