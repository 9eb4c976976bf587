package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want Role
	}{
		{name: "tenant stays tenant", role: RoleTenant, want: RoleTenant},
		{name: "landlord stays landlord", role: RoleLandlord, want: RoleLandlord},
		{name: "admin stays admin", role: RoleAdmin, want: RoleAdmin},
		{name: "unknown falls back to tenant", role: Role("superhost"), want: RoleTenant},
		{name: "empty falls back to tenant", role: Role(""), want: RoleTenant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.role))
		})
	}
}

func TestNewProfile(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		id      uuid.UUID
		email   string
		role    Role
		wantErr bool
	}{
		{name: "valid tenant profile", id: id, email: "tenant@example.com", role: RoleTenant},
		{name: "valid landlord profile", id: id, email: "landlord@example.com", role: RoleLandlord},
		{name: "zero id rejected", id: uuid.UUID{}, email: "tenant@example.com", role: RoleTenant, wantErr: true},
		{name: "empty email rejected", id: id, email: "", role: RoleTenant, wantErr: true},
		{name: "malformed email rejected", id: id, email: "not-an-email", role: RoleTenant, wantErr: true},
		{name: "unknown role rejected", id: id, email: "tenant@example.com", role: Role("superhost"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := NewProfile(tt.id, tt.email, "Test User", "+14155550123", tt.role)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, profile)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, profile.ID)
			assert.Equal(t, tt.role, profile.Role)
			assert.False(t, profile.Verified)
			assert.Equal(t, KYCStatusNone, profile.KYCStatus)
			assert.False(t, profile.CreatedAt.IsZero())
		})
	}
}

func TestSignUpRequest_Validate(t *testing.T) {
	valid := SignUpRequest{
		Email:    "new@example.com",
		Password: "correct-horse",
		FullName: "New User",
		Role:     RoleTenant,
	}

	tests := []struct {
		name    string
		mutate  func(*SignUpRequest)
		wantErr error
	}{
		{name: "valid request", mutate: func(r *SignUpRequest) {}},
		{name: "short password", mutate: func(r *SignUpRequest) { r.Password = "short" }, wantErr: ErrPasswordTooWeak},
		{name: "admin self-registration forbidden", mutate: func(r *SignUpRequest) { r.Role = RoleAdmin }, wantErr: ErrForbidden},
		{name: "unknown role", mutate: func(r *SignUpRequest) { r.Role = Role("superhost") }, wantErr: ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("missing full name", func(t *testing.T) {
		req := valid
		req.FullName = ""
		assert.Error(t, req.Validate())
	})
}

func TestRoleTree(t *testing.T) {
	assert.Equal(t, DestinationTenant, RoleTree(RoleTenant))
	assert.Equal(t, DestinationLandlord, RoleTree(RoleLandlord))
	assert.Equal(t, DestinationAdmin, RoleTree(RoleAdmin))
	assert.Equal(t, DestinationTenant, RoleTree(Role("superhost")))
}
