package domain

// Snapshot is the single merged view of authentication state exposed to
// the rest of the application. It is always replaced as a whole value;
// consumers can never observe a half-updated identity/profile pair.
//
// Invariants:
//   - Loading is true from process start until the first resolution
//     attempt (success or failure) settles, and again between an
//     identity change and its resolution.
//   - Profile is only ever non-nil while Identity is non-nil.
type Snapshot struct {
	Identity *Identity `json:"identity,omitempty"`
	Profile  *Profile  `json:"profile,omitempty"`
	Loading  bool      `json:"loading"`
}

// Authenticated reports whether a provider identity is present.
func (s Snapshot) Authenticated() bool {
	return s.Identity != nil
}

// RoleResolved reports whether the authoritative role is known.
func (s Snapshot) RoleResolved() bool {
	return s.Identity != nil && s.Profile != nil
}

// Destination is a top-level navigation target for the mobile shell.
type Destination string

const (
	// DestinationNone means "render nothing yet": the snapshot is still
	// loading and no redirect decision may be made.
	DestinationNone     Destination = ""
	DestinationWelcome  Destination = "welcome"
	DestinationTenant   Destination = "tenant"
	DestinationLandlord Destination = "landlord"
	DestinationAdmin    Destination = "admin"
)

// RoleTree maps a role onto the destination of its navigation tree.
func RoleTree(r Role) Destination {
	switch NormalizeRole(r) {
	case RoleLandlord:
		return DestinationLandlord
	case RoleAdmin:
		return DestinationAdmin
	default:
		return DestinationTenant
	}
}
