package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

const minPasswordLength = 8

// ValidatePassword enforces the credential policy: at least 8 characters,
// containing at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return util.NewValidationError("password must be at least 8 characters",
			map[string]any{"reason": "weak_password"})
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return util.NewValidationError("password must contain at least one letter and one digit",
			map[string]any{"reason": "weak_password"})
	}
	return nil
}

// HashPassword validates the policy and hashes the plaintext with a fresh
// salt. Two calls for the same input yield different hashes.
func HashPassword(password string, cost int) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", util.NewInternalError(err)
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext against its stored hash. A mismatch is
// a plain false, not an error; only an unreadable stored hash errors.
func ComparePassword(hashed, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, util.NewCorruptCredential(err)
}
