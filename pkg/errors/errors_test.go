package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarvestError_Error(t *testing.T) {
	err := New(ErrUsage, "conflicting pattern sources")
	assert.Equal(t, "conflicting pattern sources", err.Error())

	wrapped := Wrap(fmt.Errorf("underlying"), ErrPathMissing, "cannot read file")
	assert.Equal(t, "cannot read file: underlying", wrapped.Error())
}

func TestHarvestError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("underlying")
	err := Wrap(inner, ErrPathMissing, "cannot read file")
	assert.ErrorIs(t, err, inner)
}

func TestHarvestError_IsMatchesOnCode(t *testing.T) {
	err := Newf(ErrNoPatterns, "no usable patterns in %s", "file.txt")
	assert.True(t, stderrors.Is(err, New(ErrNoPatterns, "other message")))
	assert.False(t, stderrors.Is(err, New(ErrUsage, "other message")))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrUsage, "msg"))
	assert.Nil(t, Wrapf(nil, ErrUsage, "msg %d", 1))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileCopy, "copy failed").WithDetail("file", "a.txt")
	assert.Equal(t, "a.txt", err.Details["file"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrNoPatterns, CodeOf(New(ErrNoPatterns, "x")))
	assert.Equal(t, ErrPathMissing, CodeOf(fmt.Errorf("wrap: %w", New(ErrPathMissing, "x"))))
	assert.Equal(t, ErrUnknown, CodeOf(fmt.Errorf("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: New(ErrUsage, "x"), want: ExitUsage},
		{name: "missing path", err: New(ErrPathMissing, "x"), want: ExitPathMissing},
		{name: "no patterns", err: New(ErrNoPatterns, "x"), want: ExitNoPatterns},
		{name: "plain error", err: fmt.Errorf("boom"), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
