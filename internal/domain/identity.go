package domain

// Identity is the caller as resolved by the auth middleware. UserID is the
// stable external identifier; Email and DisplayName seed the lazily created
// profile.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}
