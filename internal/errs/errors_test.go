package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerError_Error(t *testing.T) {
	tests := []struct {
		name     string
		stage    Stage
		cause    error
		expected string
	}{
		{
			name:     "bad file header",
			stage:    BadFileHeader,
			cause:    errors.New("short read"),
			expected: "bad file header: short read",
		},
		{
			name:     "bad sections",
			stage:    BadSections,
			cause:    errors.New("seek out of bounds"),
			expected: "bad section headers: seek out of bounds",
		},
		{
			name:     "bad strings",
			stage:    BadStrings,
			cause:    errors.New("truncated"),
			expected: "bad strings table: truncated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.stage, tt.cause)
			require.Error(t, err)
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrap_NilCauseReturnsNil(t *testing.T) {
	require.NoError(t, Wrap(BadSymbols, nil))
}

func TestContainerError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(BadFileHeader, cause)

	require.ErrorIs(t, err, cause)
}

func TestContainerError_IsStage(t *testing.T) {
	err := Wrap(BadSymbols, errors.New("boom"))

	require.True(t, errors.Is(err, &ContainerError{Stage: BadSymbols}))
	require.False(t, errors.Is(err, &ContainerError{Stage: BadSections}))
}

func TestDecodeErrorSentinels(t *testing.T) {
	require.True(t, errors.Is(ErrIoExhausted, ErrIoExhausted))
	require.True(t, errors.Is(ErrParse, ErrParse))
	require.False(t, errors.Is(ErrParse, ErrIoExhausted))
}

func TestOffsetError_Error(t *testing.T) {
	err := &OffsetError{Index: 5, Count: 3}
	require.Equal(t, "bad offset: section index 5 out of range [0,3)", err.Error())
}
