package security

// PasswordHasher turns passwords into one-way hashes and checks them
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash
	Compare(hash, password string) error
}
