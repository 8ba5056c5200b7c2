package auth

import (
	"encoding/base64"
	"testing"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicHeader(pair string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

func TestDecodeBasicCredentials(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		email, password, err := DecodeBasicCredentials(basicHeader("jane@example.com:secret"))

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", email)
		assert.Equal(t, "secret", password)
	})

	t.Run("Password may contain colons", func(t *testing.T) {
		email, password, err := DecodeBasicCredentials(basicHeader("jane@example.com:se:cr:et"))

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", email)
		assert.Equal(t, "se:cr:et", password)
	})

	t.Run("Empty password is accepted by the decoder", func(t *testing.T) {
		// Rejecting empty passwords is SignIn's job, not the parser's
		email, password, err := DecodeBasicCredentials(basicHeader("jane@example.com:"))

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", email)
		assert.Equal(t, "", password)
	})

	t.Run("Invalid headers", func(t *testing.T) {
		testCases := []struct {
			name   string
			header string
		}{
			{"Empty header", ""},
			{"Wrong scheme", "Bearer abc123"},
			{"Missing scheme", base64.StdEncoding.EncodeToString([]byte("a:b"))},
			{"Lowercase scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("a:b"))},
			{"Invalid base64", "Basic not-base64!!"},
			{"No colon separator", basicHeader("janeexample.com")},
			{"Empty email", basicHeader(":secret")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				email, password, err := DecodeBasicCredentials(tc.header)

				assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
				assert.Empty(t, email)
				assert.Empty(t, password)
			})
		}
	})
}
