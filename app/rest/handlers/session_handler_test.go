package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayin/app/domain"
	mock_port "stayin/app/mocks"
	"stayin/app/usecase"
)

func getJSON(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func newSessionHandler(t *testing.T) (*SessionHandler, *mock_port.MockSessionUsecase, *mock_port.MockReadinessReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mock_port.NewMockSessionUsecase(ctrl)
	readiness := mock_port.NewMockReadinessReader(ctrl)
	router := usecase.NewRouter(sessions, testLogger())

	return NewSessionHandler(sessions, router, readiness, testLogger()), sessions, readiness
}

func resolvedSnapshot(role domain.Role) domain.Snapshot {
	id := uuid.New()
	return domain.Snapshot{
		Identity: &domain.Identity{ID: id, Email: "user@example.com"},
		Profile:  &domain.Profile{ID: id, Email: "user@example.com", Role: role},
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	handler, sessions, _ := newSessionHandler(t)

	snap := resolvedSnapshot(domain.RoleTenant)
	sessions.EXPECT().Snapshot().Return(snap)

	rec := getJSON(t, handler.GetSession, "/v1/session")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Loading)
	require.NotNil(t, got.Profile)
	assert.Equal(t, domain.RoleTenant, got.Profile.Role)
}

func TestSessionHandler_Refresh(t *testing.T) {
	t.Run("returns refreshed snapshot", func(t *testing.T) {
		handler, sessions, _ := newSessionHandler(t)

		sessions.EXPECT().Refresh(gomock.Any()).Return(nil)
		sessions.EXPECT().Snapshot().Return(resolvedSnapshot(domain.RoleLandlord))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/session/refresh", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Refresh(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.Profile)
		assert.Equal(t, domain.RoleLandlord, got.Profile.Role)
	})

	t.Run("provider failure maps to bad gateway", func(t *testing.T) {
		handler, sessions, _ := newSessionHandler(t)

		sessions.EXPECT().
			Refresh(gomock.Any()).
			Return(fmt.Errorf("observe session: %w", domain.ErrProviderUnavailable))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/session/refresh", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Refresh(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("store failure maps to internal error", func(t *testing.T) {
		handler, sessions, _ := newSessionHandler(t)

		sessions.EXPECT().
			Refresh(gomock.Any()).
			Return(errors.New("profile store unreachable"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/session/refresh", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Refresh(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSessionHandler_Home(t *testing.T) {
	tests := []struct {
		name       string
		snap       domain.Snapshot
		splashDone bool
		wantDest   domain.Destination
	}{
		{
			name:     "loading yields no destination",
			snap:     domain.Snapshot{Loading: true},
			wantDest: domain.DestinationNone,
		},
		{
			name:       "unauthenticated goes to welcome",
			snap:       domain.Snapshot{},
			splashDone: true,
			wantDest:   domain.DestinationWelcome,
		},
		{
			name:       "landlord goes to landlord tree",
			snap:       resolvedSnapshot(domain.RoleLandlord),
			splashDone: true,
			wantDest:   domain.DestinationLandlord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sessions, readiness := newSessionHandler(t)

			// Once for the handler, once for the router's decision.
			sessions.EXPECT().Snapshot().Return(tt.snap).Times(2)
			readiness.EXPECT().Ready().Return(tt.splashDone)

			rec := getJSON(t, handler.Home, "/v1/home")

			assert.Equal(t, http.StatusOK, rec.Code)

			var got HomeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantDest, got.Destination)
			assert.Equal(t, tt.snap.Loading, got.Loading)
			assert.Equal(t, tt.splashDone, got.SplashDone)
		})
	}
}

func TestSessionHandler_Welcome(t *testing.T) {
	handler, _, _ := newSessionHandler(t)

	rec := getJSON(t, handler.Welcome, "/v1/welcome")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got WelcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Message)
	assert.Contains(t, got.Actions, "login")
	assert.Contains(t, got.Actions, "register")
	assert.Contains(t, got.Actions, "recovery")
}

func TestSessionHandler_StartupNotices(t *testing.T) {
	t.Run("reports settled failures", func(t *testing.T) {
		handler, _, readiness := newSessionHandler(t)

		readiness.EXPECT().Notices().Return([]domain.StartupNotice{
			{Task: "local_store", Message: "connection refused"},
		})

		rec := getJSON(t, handler.StartupNotices, "/v1/startup/notices")

		assert.Equal(t, http.StatusOK, rec.Code)

		var got NoticesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Notices, 1)
		assert.Equal(t, "local_store", got.Notices[0].Task)
	})

	t.Run("clean startup yields empty list", func(t *testing.T) {
		handler, _, readiness := newSessionHandler(t)

		readiness.EXPECT().Notices().Return(nil)

		rec := getJSON(t, handler.StartupNotices, "/v1/startup/notices")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"notices":[]}`, rec.Body.String())
	})
}
