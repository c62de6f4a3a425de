package handlers

import (
	"testing"

	"skaters_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "4.2", "99999999999999999999"} {
		_, err := ParseID(raw)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr), "input %q", raw)
		assert.Equal(t, apperrors.CodeBadRequest, appErr.Code)
	}
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	names := fieldNames(map[string]string{"email": "x", "name": "y"})
	assert.ElementsMatch(t, []string{"email", "name"}, names)
	assert.Empty(t, fieldNames(nil))
}
