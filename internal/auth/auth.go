package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// ValidEmail reports whether s looks like an email address. Same shape check
// the submission form applies to contact info.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}
