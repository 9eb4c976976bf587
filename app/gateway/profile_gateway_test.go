package gateway

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

func TestProfileGateway_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockProfileStore(ctrl)
	gw := NewProfileGateway(repo, testLogger())

	id := uuid.New()

	t.Run("passes document through", func(t *testing.T) {
		repo.EXPECT().
			Get(gomock.Any(), id).
			Return(&domain.Profile{ID: id, Role: domain.RoleLandlord}, nil)

		profile, err := gw.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleLandlord, profile.Role)
	})

	t.Run("not found passes through untouched", func(t *testing.T) {
		repo.EXPECT().
			Get(gomock.Any(), id).
			Return(nil, domain.ErrProfileNotFound)

		_, err := gw.Get(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("unknown role survives the read", func(t *testing.T) {
		repo.EXPECT().
			Get(gomock.Any(), id).
			Return(&domain.Profile{ID: id, Role: "superhost"}, nil)

		profile, err := gw.Get(context.Background(), id)
		require.NoError(t, err)
		// The raw value is preserved; routing normalizes it.
		assert.Equal(t, domain.Role("superhost"), profile.Role)
		assert.Equal(t, domain.RoleTenant, domain.NormalizeRole(profile.Role))
	})
}

func TestProfileGateway_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockProfileStore(ctrl)
	gw := NewProfileGateway(repo, testLogger())

	id := uuid.New()

	t.Run("writes matching document", func(t *testing.T) {
		profile := &domain.Profile{ID: id, Role: domain.RoleTenant}
		repo.EXPECT().
			Set(gomock.Any(), id, profile).
			Return(nil)

		assert.NoError(t, gw.Set(context.Background(), id, profile))
	})

	t.Run("rejects document keyed under another id", func(t *testing.T) {
		profile := &domain.Profile{ID: uuid.New(), Role: domain.RoleTenant}

		err := gw.Set(context.Background(), id, profile)
		assert.Error(t, err)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		profile := &domain.Profile{ID: id, Role: domain.RoleTenant}
		repo.EXPECT().
			Set(gomock.Any(), id, profile).
			Return(errors.New("disk full"))

		err := gw.Set(context.Background(), id, profile)
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestProfileGateway_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockProfileStore(ctrl)
	gw := NewProfileGateway(repo, testLogger())

	id := uuid.New()
	verified := true
	patch := domain.ProfilePatch{Verified: &verified}

	repo.EXPECT().
		Update(gomock.Any(), id, patch).
		Return(&domain.Profile{ID: id, Role: domain.RoleTenant, Verified: true}, nil)

	profile, err := gw.Update(context.Background(), id, patch)
	require.NoError(t, err)
	assert.True(t, profile.Verified)
}
