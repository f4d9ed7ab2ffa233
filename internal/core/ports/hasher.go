package ports

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches digest. A malformed digest is not
	// an error: it simply never matches.
	Verify(plain, digest string) bool
}
