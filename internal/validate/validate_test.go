package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("John", "name"))
	assert.EqualError(t, Required("", "name"), "name is required")
	assert.EqualError(t, Required("   ", "address"), "address is required")
}

func TestEmail(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Email("john@example.com"))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "@x.com"} {
			assert.Error(t, Email(bad), bad)
		}
	})
}

func TestPhone(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Phone("15551234567"))
		assert.NoError(t, Phone("+15551234567"))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, bad := range []string{"", "0123", "phone", "+0123456"} {
			assert.Error(t, Phone(bad), bad)
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Password("Sup3r!pass"))
	})

	t.Run("Too short", func(t *testing.T) {
		assert.Error(t, Password("S3!a"))
	})

	t.Run("Missing character classes", func(t *testing.T) {
		for _, bad := range []string{"alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSpecials11"} {
			assert.Error(t, Password(bad), bad)
		}
	})
}
