package infrastructure

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the policy value the rest of the platform uses.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword compares a plaintext password against a stored digest.
// Returns nil on match.
func CheckPassword(password, digest string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
