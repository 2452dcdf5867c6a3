package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))

}

// MatchesPassword reports whether plain hashes to hashed.
func MatchesPassword(plainPassword, hashedPassword string) bool {
	return ComparePasswords(hashedPassword, plainPassword) == nil
}
