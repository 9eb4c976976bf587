package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayin/app/domain"
	mock_port "stayin/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfile(id uuid.UUID, role domain.Role) *domain.Profile {
	return &domain.Profile{
		ID:    id,
		Email: "user@example.com",
		Role:  role,
	}
}

// startSession wires the usecase to a hand-fed event channel and runs
// the state machine in the background.
func startSession(t *testing.T, creds *mock_port.MockCredentialService, profiles *mock_port.MockProfileStore) (*SessionUsecase, chan domain.IdentityEvent, context.CancelFunc) {
	t.Helper()

	events := make(chan domain.IdentityEvent)
	subscribed := make(chan struct{})
	creds.EXPECT().
		Subscribe(gomock.Any()).
		DoAndReturn(func(context.Context) (<-chan domain.IdentityEvent, error) {
			close(subscribed)
			return events, nil
		})

	u := NewSessionUsecase(creds, profiles, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = u.Run(ctx)
	}()
	<-subscribed

	t.Cleanup(func() {
		cancel()
		close(events)
		<-done
	})

	return u, events, cancel
}

func TestSessionUsecase_InitialSnapshotIsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := NewSessionUsecase(
		mock_port.NewMockCredentialService(ctrl),
		mock_port.NewMockProfileStore(ctrl),
		time.Second,
		testLogger(),
	)

	snap := u.Snapshot()
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)

	select {
	case <-u.Settled():
		t.Fatal("session must not settle before the first resolution")
	default:
	}
}

func TestSessionUsecase_ResolvesProfileOnIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}
	profiles.EXPECT().
		Get(gomock.Any(), identity.ID).
		Return(testProfile(identity.ID, domain.RoleLandlord), nil)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: identity}

	select {
	case <-u.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("session never settled")
	}

	snap := u.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Identity)
	assert.Equal(t, identity.ID, snap.Identity.ID)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, domain.RoleLandlord, snap.Profile.Role)
}

func TestSessionUsecase_SignedOutObservationSettlesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: nil}

	select {
	case <-u.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("session never settled")
	}

	snap := u.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
}

func TestSessionUsecase_ProfileAbsentKeepsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	identity := &domain.Identity{ID: uuid.New()}
	profiles.EXPECT().
		Get(gomock.Any(), identity.ID).
		Return(nil, domain.ErrProfileNotFound)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: identity}

	select {
	case <-u.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("session never settled")
	}

	snap := u.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
}

func TestSessionUsecase_ProfileNeverWithoutIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	identity := &domain.Identity{ID: uuid.New()}
	fetched := make(chan struct{})
	profiles.EXPECT().
		Get(gomock.Any(), identity.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*domain.Profile, error) {
			close(fetched)
			return testProfile(identity.ID, domain.RoleTenant), nil
		})

	u, events, _ := startSession(t, creds, profiles)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watch := u.Watch(ctx)

	events <- domain.IdentityEvent{Identity: identity}
	events <- domain.IdentityEvent{Identity: nil}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-watch:
			if snap.Profile != nil {
				require.NotNil(t, snap.Identity, "profile observed without identity")
			}
			if !snap.Loading && snap.Identity == nil {
				// Reached the signed-out state without violations. Wait
				// for the in-flight fetch so the mock sees its call
				// before the controller is finished.
				<-fetched
				return
			}
		case <-deadline:
			t.Fatal("never observed the signed-out state")
		}
	}
}

func TestSessionUsecase_StaleFetchDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	first := &domain.Identity{ID: uuid.New(), Email: "first@example.com"}
	second := &domain.Identity{ID: uuid.New(), Email: "second@example.com"}

	release := make(chan struct{})
	profiles.EXPECT().
		Get(gomock.Any(), first.ID).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
			<-release // hold the first fetch until the second resolves
			return testProfile(first.ID, domain.RoleAdmin), nil
		})
	profiles.EXPECT().
		Get(gomock.Any(), second.ID).
		Return(testProfile(second.ID, domain.RoleTenant), nil)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: first}
	events <- domain.IdentityEvent{Identity: second}

	require.Eventually(t, func() bool {
		snap := u.Snapshot()
		return snap.Profile != nil && snap.Profile.ID == second.ID
	}, 2*time.Second, 10*time.Millisecond, "second identity never resolved")

	// Let the superseded fetch complete; its result must be dropped.
	close(release)
	time.Sleep(50 * time.Millisecond)

	snap := u.Snapshot()
	require.NotNil(t, snap.Identity)
	assert.Equal(t, second.ID, snap.Identity.ID)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, second.ID, snap.Profile.ID)
	assert.Equal(t, domain.RoleTenant, snap.Profile.Role)
}

func TestSessionUsecase_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	identity := &domain.Identity{ID: uuid.New()}
	gomock.InOrder(
		profiles.EXPECT().
			Get(gomock.Any(), identity.ID).
			Return(testProfile(identity.ID, domain.RoleTenant), nil),
		profiles.EXPECT().
			Get(gomock.Any(), identity.ID).
			Return(testProfile(identity.ID, domain.RoleLandlord), nil),
	)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: identity}
	<-u.Settled()

	require.Eventually(t, func() bool {
		return u.Snapshot().Profile != nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, u.Refresh(context.Background()))

	snap := u.Snapshot()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, domain.RoleLandlord, snap.Profile.Role, "refresh must pull the updated role")
}

func TestSessionUsecase_RefreshSignedOutIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: nil}
	<-u.Settled()

	// No profile store expectation set: any call would fail the test.
	assert.NoError(t, u.Refresh(context.Background()))
}

func TestSessionUsecase_SignOutClearsSynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	identity := &domain.Identity{ID: uuid.New()}
	profiles.EXPECT().
		Get(gomock.Any(), identity.ID).
		Return(testProfile(identity.ID, domain.RoleTenant), nil)
	creds.EXPECT().SignOut(gomock.Any()).Return(nil)

	u, events, _ := startSession(t, creds, profiles)

	events <- domain.IdentityEvent{Identity: identity}
	<-u.Settled()

	require.NoError(t, u.SignOut(context.Background()))

	// Cleared before any stream emission, not eventually.
	snap := u.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.Loading)
}

func TestSessionUsecase_SignOutProviderFailureStillClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mock_port.NewMockCredentialService(ctrl)
	profiles := mock_port.NewMockProfileStore(ctrl)

	creds.EXPECT().SignOut(gomock.Any()).Return(domain.ErrProviderUnavailable)

	u, _, _ := startSession(t, creds, profiles)

	err := u.SignOut(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)

	snap := u.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
}

func TestSessionUsecase_WatchDeliversCurrentSnapshotFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u := NewSessionUsecase(
		mock_port.NewMockCredentialService(ctrl),
		mock_port.NewMockProfileStore(ctrl),
		time.Second,
		testLogger(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch := u.Watch(ctx)

	select {
	case snap := <-watch:
		assert.True(t, snap.Loading)
	case <-time.After(time.Second):
		t.Fatal("watch never delivered the initial snapshot")
	}
}
