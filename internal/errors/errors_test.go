package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestError_MessageIncludesCause(t *testing.T) {
	err := OptimizationFailed(fs.ErrPermission)

	if !strings.Contains(err.Error(), "prompt optimization failed") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Error(), fs.ErrPermission.Error()) {
		t.Errorf("Error() = %q, cause missing", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	err := LedgerPersist(fs.ErrPermission)

	if !stderrors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is does not see the wrapped cause")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", InvalidInput("empty"), ErrInvalidInput, true},
		{"different code", InvalidInput("empty"), ErrLedgerPersist, false},
		{"wrapped cause", Wrap(ErrStoreCorrupt, "bad store", "", fs.ErrInvalid), ErrStoreCorrupt, true},
		{"plain stdlib error", fs.ErrInvalid, ErrInvalidInput, false},
		{"nil", nil, ErrInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
