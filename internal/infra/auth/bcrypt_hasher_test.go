package auth

import (
	"testing"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newHasherTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}, // low cost for fast tests
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())

	// Test valid passwords
	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidateStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	// Test invalid passwords with specific error cases
	testCases := []struct {
		password string
		details  string
	}{
		{"123", "too short"},
		{"PASSWORD123!", "lowercase"},
		{"password123!", "uppercase"},
		{"PasswordABC!", "digit"},
		{"Password1234", "special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidateStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))

		var appErr domainerrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), tc.details)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	cfg := newHasherTestConfig()
	cfg.Auth.BcryptCost = 6
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_ValidateStrengthEdgeCases(t *testing.T) {
	t.Run("empty password always fails", func(t *testing.T) {
		hasher := NewBcryptHasher(newHasherTestConfig())
		err := hasher.ValidateStrength("")
		assert.Error(t, err)
	})

	t.Run("nil policy accepts anything non-empty", func(t *testing.T) {
		cfg := newHasherTestConfig()
		cfg.PasswordStrength = nil
		hasher := NewBcryptHasher(cfg)

		assert.NoError(t, hasher.ValidateStrength("x"))
		assert.Error(t, hasher.ValidateStrength(""))
	})

	t.Run("unicode letters satisfy letter requirements", func(t *testing.T) {
		hasher := NewBcryptHasher(newHasherTestConfig())
		assert.NoError(t, hasher.ValidateStrength("Pässphräse123!"))
	})

	t.Run("max length is enforced", func(t *testing.T) {
		cfg := newHasherTestConfig()
		cfg.PasswordStrength.MaxLength = 16
		hasher := NewBcryptHasher(cfg)

		err := hasher.ValidateStrength("ThisPasswordIsDefinitelyTooLong123!")
		assert.Error(t, err)
	})
}
