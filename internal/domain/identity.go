package domain

// Identity is the caller as vouched for by the identity provider.
// The zero value is an anonymous caller.
type Identity struct {
	UserID      string
	DisplayName string
}

// IsAnonymous reports whether the caller has no verified user id.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// Name returns the display name, falling back to DefaultDisplayName.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return DefaultDisplayName
}
