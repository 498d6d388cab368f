package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Valid password",
			password:    "correct horse battery staple",
			expectError: false,
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
				assert.NotEqual(t, tt.password, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}
	hashedPassword, err := hashService.HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectMatch bool
	}{
		{
			name:        "Matching password",
			password:    "correct horse battery staple",
			hash:        hashedPassword,
			expectMatch: true,
		},
		{
			name:        "Wrong password",
			password:    "incorrect horse",
			hash:        hashedPassword,
			expectMatch: false,
		},
		{
			name:        "Garbage hash",
			password:    "correct horse battery staple",
			hash:        "not-a-bcrypt-hash",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hash, tt.password))
		})
	}
}
