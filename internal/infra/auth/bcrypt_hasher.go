// Package auth implements password hashing for the back-office credential.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the default bcrypt cost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
