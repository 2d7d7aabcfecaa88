package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"simple name", "Bobby", true},
		{"minimum length", "abcd", true},
		{"maximum length", "abcdefghijklmno", true},
		{"digits underscore hyphen", "user_1-2", true},
		{"too short", "abc", false},
		{"too long", "abcdefghijklmnop", false},
		{"empty", "", false},
		{"space", "bob by", false},
		{"dot", "bob.by", false},
		{"unicode", "böbby", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.username))
		})
	}
}

func TestValidCardNumber(t *testing.T) {
	assert.True(t, ValidCardNumber("4111111111111111"))
	assert.True(t, ValidCardNumber("4242424242424242"))

	assert.False(t, ValidCardNumber(""))
	assert.False(t, ValidCardNumber("1234567890123456"))
	assert.False(t, ValidCardNumber("4111-1111-1111-1111"))
}
