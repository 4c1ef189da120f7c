package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for an admin credential at the default
// cost. Credentials only enter the system through the startup bootstrap, so
// hashing cost is not a hot path.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
// A malformed hash counts as a mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
