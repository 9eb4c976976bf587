package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayin/app/domain"
	mock_port "stayin/app/mocks"
)

func validSignUp() *domain.SignUpRequest {
	return &domain.SignUpRequest{
		Email:       "new@example.com",
		Password:    "correct-horse",
		FullName:    "New User",
		PhoneNumber: "+14155550123",
		Role:        domain.RoleLandlord,
	}
}

func TestAccountUsecase_SignIn(t *testing.T) {
	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockCredentialService)
		wantErr    error
	}{
		{
			name: "successful sign-in",
			setupMocks: func(creds *mock_port.MockCredentialService) {
				creds.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "secret-password").
					Return(identity, nil)
			},
		},
		{
			name: "bad credentials",
			setupMocks: func(creds *mock_port.MockCredentialService) {
				creds.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "secret-password").
					Return(nil, domain.ErrInvalidCredentials)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "provider down",
			setupMocks: func(creds *mock_port.MockCredentialService) {
				creds.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "secret-password").
					Return(nil, domain.ErrProviderUnavailable)
			},
			wantErr: domain.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creds := mock_port.NewMockCredentialService(ctrl)
			profiles := mock_port.NewMockProfileStore(ctrl)
			tt.setupMocks(creds)

			u := NewAccountUsecase(creds, profiles, testLogger())
			got, err := u.SignIn(context.Background(), "user@example.com", "secret-password")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, identity, got)
			}
		})
	}
}

func TestAccountUsecase_SignUp(t *testing.T) {
	identity := &domain.Identity{ID: uuid.New(), Email: "new@example.com"}

	tests := []struct {
		name         string
		req          *domain.SignUpRequest
		setupMocks   func(*mock_port.MockCredentialService, *mock_port.MockProfileStore)
		wantErr      error
		wantIdentity bool
	}{
		{
			name: "successful registration",
			req:  validSignUp(),
			setupMocks: func(creds *mock_port.MockCredentialService, profiles *mock_port.MockProfileStore) {
				creds.EXPECT().
					SignUp(gomock.Any(), gomock.Any(), "correct-horse").
					Return(identity, nil)
				profiles.EXPECT().
					Set(gomock.Any(), identity.ID, gomock.Any()).
					DoAndReturn(func(ctx context.Context, id uuid.UUID, p *domain.Profile) error {
						assert.Equal(t, identity.ID, p.ID)
						assert.Equal(t, domain.RoleLandlord, p.Role)
						return nil
					})
			},
			wantIdentity: true,
		},
		{
			name: "weak password rejected before any remote call",
			req: func() *domain.SignUpRequest {
				r := validSignUp()
				r.Password = "short"
				return r
			}(),
			setupMocks: func(*mock_port.MockCredentialService, *mock_port.MockProfileStore) {},
			wantErr:    domain.ErrPasswordTooWeak,
		},
		{
			name: "admin self-registration rejected",
			req: func() *domain.SignUpRequest {
				r := validSignUp()
				r.Role = domain.RoleAdmin
				return r
			}(),
			setupMocks: func(*mock_port.MockCredentialService, *mock_port.MockProfileStore) {},
			wantErr:    domain.ErrForbidden,
		},
		{
			name: "duplicate identity",
			req:  validSignUp(),
			setupMocks: func(creds *mock_port.MockCredentialService, profiles *mock_port.MockProfileStore) {
				creds.EXPECT().
					SignUp(gomock.Any(), gomock.Any(), "correct-horse").
					Return(nil, domain.ErrIdentityExists)
			},
			wantErr: domain.ErrIdentityExists,
		},
		{
			name: "profile write failure keeps identity",
			req:  validSignUp(),
			setupMocks: func(creds *mock_port.MockCredentialService, profiles *mock_port.MockProfileStore) {
				creds.EXPECT().
					SignUp(gomock.Any(), gomock.Any(), "correct-horse").
					Return(identity, nil)
				profiles.EXPECT().
					Set(gomock.Any(), identity.ID, gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr:      domain.ErrProfileWriteFailed,
			wantIdentity: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creds := mock_port.NewMockCredentialService(ctrl)
			profiles := mock_port.NewMockProfileStore(ctrl)
			tt.setupMocks(creds, profiles)

			u := NewAccountUsecase(creds, profiles, testLogger())
			got, err := u.SignUp(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.wantIdentity {
				assert.Equal(t, identity, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestAccountUsecase_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	creds.EXPECT().ResetPassword(gomock.Any(), "user@example.com").Return(nil)
	creds.EXPECT().ResetPassword(gomock.Any(), "down@example.com").Return(domain.ErrProviderUnavailable)

	u := NewAccountUsecase(creds, profiles, testLogger())

	assert.NoError(t, u.ResetPassword(context.Background(), "user@example.com"))
	assert.ErrorIs(t, u.ResetPassword(context.Background(), "down@example.com"), domain.ErrProviderUnavailable)
}
