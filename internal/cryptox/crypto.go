// Package cryptox wraps password hashing for user accounts.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// hashCost is a variable so tests can lower it.
var hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, hashCost)
}

// ComparePassword checks password against a bcrypt hash. A mismatch yields
// ErrPasswordMismatch; a malformed hash yields the bcrypt error.
func ComparePassword(hash, password []byte) error {
	err := bcrypt.CompareHashAndPassword(hash, password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
