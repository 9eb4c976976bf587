package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayin/app/domain"
	mock_port "stayin/app/mocks"
)

func snapshotFor(role domain.Role) domain.Snapshot {
	id := uuid.New()
	return domain.Snapshot{
		Identity: &domain.Identity{ID: id},
		Profile:  &domain.Profile{ID: id, Role: role},
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name string
		snap domain.Snapshot
		want domain.Destination
	}{
		{
			name: "loading holds navigation",
			snap: domain.Snapshot{Loading: true},
			want: domain.DestinationNone,
		},
		{
			name: "loading with identity still holds",
			snap: domain.Snapshot{Identity: &domain.Identity{ID: uuid.New()}, Loading: true},
			want: domain.DestinationNone,
		},
		{
			name: "unauthenticated goes to welcome",
			snap: domain.Snapshot{},
			want: domain.DestinationWelcome,
		},
		{
			name: "identity without profile goes to welcome",
			snap: domain.Snapshot{Identity: &domain.Identity{ID: uuid.New()}},
			want: domain.DestinationWelcome,
		},
		{
			name: "tenant routes to tenant tree",
			snap: snapshotFor(domain.RoleTenant),
			want: domain.DestinationTenant,
		},
		{
			name: "landlord routes to landlord tree",
			snap: snapshotFor(domain.RoleLandlord),
			want: domain.DestinationLandlord,
		},
		{
			name: "admin routes to admin tree",
			snap: snapshotFor(domain.RoleAdmin),
			want: domain.DestinationAdmin,
		},
		{
			name: "unknown role falls back to tenant tree",
			snap: snapshotFor(domain.Role("superhost")),
			want: domain.DestinationTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteFor(tt.snap))
		})
	}
}

func TestRouter_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock_port.NewMockSessionReader(ctrl)
	sessions.EXPECT().Snapshot().Return(snapshotFor(domain.RoleLandlord))

	r := NewRouter(sessions, testLogger())
	assert.Equal(t, domain.DestinationLandlord, r.Decide())
}

func TestRouter_RunAppliesRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updates := make(chan domain.Snapshot)
	sessions := mock_port.NewMockSessionReader(ctrl)
	sessions.EXPECT().
		Watch(gomock.Any()).
		Return((<-chan domain.Snapshot)(updates))

	r := NewRouter(sessions, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()
	defer func() {
		cancel()
		close(updates)
		<-done
	}()

	// Loading snapshot: no decision, current stays unset.
	updates <- domain.Snapshot{Loading: true}
	assert.Equal(t, domain.DestinationNone, r.Current())

	// Resolution lands: redirect to the role tree.
	updates <- snapshotFor(domain.RoleAdmin)
	require.Eventually(t, func() bool {
		return r.Current() == domain.DestinationAdmin
	}, time.Second, 5*time.Millisecond)

	// Sign-out: redirect to welcome.
	updates <- domain.Snapshot{}
	require.Eventually(t, func() bool {
		return r.Current() == domain.DestinationWelcome
	}, time.Second, 5*time.Millisecond)

	// A new loading phase holds position instead of bouncing.
	updates <- domain.Snapshot{Loading: true}
	assert.Equal(t, domain.DestinationWelcome, r.Current())
}
