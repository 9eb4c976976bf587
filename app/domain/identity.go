package domain

import (
	"github.com/google/uuid"
)

// Identity is the credential provider's record of who is signed in,
// independent of any business role. It is owned by the provider; this
// service only holds read-only copies inside snapshots.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email,omitempty"`
	Name  string    `json:"name,omitempty"`
}

// IdentityEvent is one emission of the identity-change stream.
// A nil Identity means "signed out".
type IdentityEvent struct {
	Identity *Identity
}

// IdentityTraits are the provider-side traits written at registration.
type IdentityTraits struct {
	Email       string
	FullName    string
	PhoneNumber string
}

// ProviderSession is an active session at the credential provider,
// together with the token needed to re-observe it.
type ProviderSession struct {
	Token    string
	Active   bool
	Identity Identity
}
