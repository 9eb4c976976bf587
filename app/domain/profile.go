package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Role represents the business role of a platform user
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the closed set of roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole maps arbitrary role values onto the closed role set.
// Unknown values fall back to the tenant role so that a corrupted
// document can never break navigation.
func NormalizeRole(r Role) Role {
	if r.Valid() {
		return r
	}
	return RoleTenant
}

// KYCStatus tracks landlord identity-verification progress
type KYCStatus string

const (
	KYCStatusNone     KYCStatus = "none"
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// Profile is the durable business record for an identity, keyed 1:1 by
// the identity id. It is the authoritative source of the user's role.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        Role      `json:"role"`
	Verified    bool      `json:"verified"`

	// KYC fields, only populated for landlords
	KYCStatus      KYCStatus `json:"kyc_status,omitempty"`
	NationalIDHint string    `json:"national_id_hint,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a profile document with validation
func NewProfile(id uuid.UUID, email, fullName, phoneNumber string, role Role) (*Profile, error) {
	if id == (uuid.UUID{}) {
		return nil, fmt.Errorf("profile id is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	if !role.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	now := time.Now()

	return &Profile{
		ID:          id,
		Email:       email,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Role:        role,
		Verified:    false,
		KYCStatus:   KYCStatusNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ProfilePatch is a partial profile update. Nil fields are left untouched
// by the store's merge; UpdatedAt is stamped by the store.
type ProfilePatch struct {
	FullName    *string    `json:"full_name,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Role        *Role      `json:"role,omitempty"`
	Verified    *bool      `json:"verified,omitempty"`
	KYCStatus   *KYCStatus `json:"kyc_status,omitempty"`
}

// IsLandlord returns true if the profile's normalized role is landlord
func (p *Profile) IsLandlord() bool {
	return NormalizeRole(p.Role) == RoleLandlord
}

// IsAdmin returns true if the profile's normalized role is admin
func (p *Profile) IsAdmin() bool {
	return NormalizeRole(p.Role) == RoleAdmin
}

// SignUpRequest carries the fields collected at registration. The email
// and password go to the credential provider; the rest seed the profile
// document created under the same identity id.
type SignUpRequest struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Role        Role
}

// Validate checks the sign-up request before any remote call is made
func (r *SignUpRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	if len(r.Password) < 8 {
		return ErrPasswordTooWeak
	}
	if r.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if !r.Role.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, r.Role)
	}
	if r.Role == RoleAdmin {
		// Admin accounts are provisioned out of band, never self-registered.
		return ErrForbidden
	}
	return nil
}
