// Package auth provides password handling for the user service.
package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a supplied password does not match the
// stored one. Deliberately carries no detail about which side differed.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordScheme defines how passwords are stored and compared.
// Hash transforms a plaintext password into its stored form; Compare checks a
// plaintext candidate against a stored value and returns ErrPasswordMismatch
// on failure.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Compare(stored, supplied string) error
}

// PlaintextScheme stores passwords as-is and compares them with a
// constant-time exact match. This is the board's default scheme.
type PlaintextScheme struct{}

// NewPlaintextScheme creates a new PlaintextScheme.
func NewPlaintextScheme() *PlaintextScheme {
	return &PlaintextScheme{}
}

// Hash implements the PasswordScheme interface; the stored form is the
// password itself.
func (s *PlaintextScheme) Hash(password string) (string, error) {
	return password, nil
}

// Compare implements the PasswordScheme interface using an exact match.
func (s *PlaintextScheme) Compare(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptScheme stores bcrypt hashes and compares with bcrypt.
type BcryptScheme struct {
	cost int
}

// NewBcryptScheme creates a new BcryptScheme with the default bcrypt cost.
func NewBcryptScheme() *BcryptScheme {
	return &BcryptScheme{cost: bcrypt.DefaultCost}
}

// Hash implements the PasswordScheme interface using bcrypt.
func (s *BcryptScheme) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the PasswordScheme interface using bcrypt.
func (s *BcryptScheme) Compare(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
