package helpers

import "golang.org/x/crypto/bcrypt"

// hashCost stays at the bcrypt default. Raise it only together with a
// rehash-on-login pass, or existing rows never catch up.
const hashCost = bcrypt.DefaultCost

// HashPassword derives the bcrypt hash stored in users.password.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	return string(b), err
}

// CompareHashAndPassword reports whether plain matches the stored hash.
// A malformed or empty hash reads as a mismatch, never as an error.
func CompareHashAndPassword(hash string, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
