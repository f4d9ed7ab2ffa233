package ports

// TokenManager issues and verifies bearer tokens.
//
// The claim set is deliberately minimal: only the account email is embedded,
// so every protected request re-derives identity and role from the store
// instead of trusting stale token data.
type TokenManager interface {
	Issue(email string) (string, error)
	// Parse verifies signature and expiry and returns the embedded email.
	Parse(token string) (string, error)
}
