package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt log-rounds used for every stored password.
const hashCost = 12

// HashPassword hashes a plaintext password using bcrypt with a per-hash
// random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored hash in
// constant time. A nil error means the password matches.
func VerifyPassword(hash string, password string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
}
