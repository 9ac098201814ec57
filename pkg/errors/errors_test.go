package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("must be a positive integer")
	err := NewInvalidArgumentError("limit", "got 0", underlying)

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "limit", argErr.Field)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "limit")
}

func TestInvalidArgumentErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewInvalidArgumentError("", "sibling count must be non-negative", nil)
	require.Equal(t, "invalid argument: sibling count must be non-negative", err.Error())
}

func TestParseErrorIncludesLineMetadata(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("quilt.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "quilt.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "quilt.yaml:7")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme.mode", "must be one of light, dark, system", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.mode", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be one of")
}
