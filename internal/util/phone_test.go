package util

import (
	"testing"

	domainerrors "rentora/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ten bare digits", "5512345678", "+525512345678"},
		{"ten digits with spaces", "55 1234 5678", "+525512345678"},
		{"ten digits with dashes", "55-1234-5678", "+525512345678"},
		{"ten digits with dots", "55.1234.5678", "+525512345678"},
		{"ten digits with parentheses", "(55) 1234 5678", "+525512345678"},
		{"country code prefix", "525512345678", "+525512345678"},
		{"plus country code", "+525512345678", "+525512345678"},
		{"plus country code with spaces", "+52 55 1234 5678", "+525512345678"},
		{"surrounding whitespace", "  5512345678  ", "+525512345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once, err := NormalizePhone("55 1234 5678")
	require.NoError(t, err)

	twice, err := NormalizePhone(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizePhone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "123456789"},
		{"too long", "55123456789"},
		{"eleven digits without country code", "15512345678"},
		{"wrong country code", "+15512345678"},
		{"letters", "55abc45678"},
		{"plus in the middle", "5512+345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone(tt.raw)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_PHONE_NUMBER", appErr.ErrorCode())
		})
	}
}
