package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/handler"
	service_mocks "github.com/meeplelab/ludoteca-service/internal/handler/mocks"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
)

const (
	testJWTKey = "test-signing-key"
	testHost   = "play.meeple.test"
)

var (
	testTenant = model.Tenant{
		ID:               "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Name:             "Meeple Lab",
		Domain:           testHost,
		CurrentEditionID: 3,
	}
	testScope = model.Scope{TenantID: testTenant.ID, EditionID: testTenant.CurrentEditionID}
)

type mocks struct {
	tenant      *service_mocks.MockTenantService
	library     *service_mocks.MockLibraryService
	reservation *service_mocks.MockReservationService
	catalog     *service_mocks.MockCatalogService
}

func newTestRouter(t *testing.T) (*echo.Echo, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		tenant:      service_mocks.NewMockTenantService(c),
		library:     service_mocks.NewMockLibraryService(c),
		reservation: service_mocks.NewMockReservationService(c),
		catalog:     service_mocks.NewMockCatalogService(c),
	}
	h := handler.New(m.tenant, m.library, m.reservation, m.catalog,
		auth.Config{JWTKey: testJWTKey}, zap.NewNop())
	return h.NewRouter(), m
}

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: userID + "@example.com",
	}
	if role != "" {
		claims.Access = map[string]auth.TenantAccess{testTenant.ID: {Role: role}}
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTKey))
	require.NoError(t, err)
	return token
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Host = testHost
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_GetGames(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
				m.library.EXPECT().ListGames(gomock.Any(), testScope).Return([]model.LibraryGame{
					{
						ID:        10,
						TenantID:  testTenant.ID,
						EditionID: 3,
						Status:    model.StatusAvailable,
						Game:      model.GameSummary{ID: 1, Name: "Carcassonne"},
					},
				}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":10,"tenantId":"7c9e6679-7425-40de-944b-e07fc1f90ae7","editionId":3,"owner":"","notes":"","status":"available","game":{"id":1,"name":"Carcassonne","image":"","year":"","minPlayers":"","maxPlayers":"","minPlaytime":"","maxPlaytime":""}}]`,
			},
		},
		{
			name: "err. unknown host",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).
					Return(model.Tenant{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
				m.library.EXPECT().ListGames(gomock.Any(), testScope).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			w := doRequest(e, http.MethodGet, "/api/v1/games", "", "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m := newTestRouter(t)
		m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
		m.reservation.EXPECT().ListActive(gomock.Any(), testScope, "u-1").Return([]model.Reservation{
			{
				ID:            1,
				TenantID:      testTenant.ID,
				EditionID:     3,
				LibraryGameID: 42,
				DisplayID:     5,
				UserID:        "u-1",
				ExpiresAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
				Status:        model.ReservationActive,
			},
		}, nil)

		w := doRequest(e, http.MethodGet, "/api/v1/reservations", signToken(t, "u-1", ""), "")

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`[{"id":1,"tenantId":"7c9e6679-7425-40de-944b-e07fc1f90ae7","editionId":3,"libraryGameId":42,"displayId":5,"userId":"u-1","expiresAt":"2026-09-01T12:00:00Z","status":"active","createdAt":"0001-01-01T00:00:00Z"}]`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. no token", func(t *testing.T) {
		t.Parallel()
		e, m := newTestRouter(t)
		m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)

		w := doRequest(e, http.MethodGet, "/api/v1/reservations", "", "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"no token in Authorization header"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
				m.reservation.EXPECT().Create(gomock.Any(), testScope, "u-1", int64(42)).
					Return(model.Reservation{
						ID:            1,
						TenantID:      testTenant.ID,
						EditionID:     3,
						LibraryGameID: 42,
						DisplayID:     5,
						UserID:        "u-1",
						ExpiresAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
						Status:        model.ReservationActive,
					}, nil)
			},
			body: `{"libraryGameId":42}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"tenantId":"7c9e6679-7425-40de-944b-e07fc1f90ae7","editionId":3,"libraryGameId":42,"displayId":5,"userId":"u-1","expiresAt":"2026-09-01T12:00:00Z","status":"active","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. already reserved",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
				m.reservation.EXPECT().Create(gomock.Any(), testScope, "u-1", int64(42)).
					Return(model.Reservation{}, errs.ErrGameReserved)
			},
			body: `{"libraryGameId":42}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"failed to reserve game"}`,
			},
		},
		{
			name: "err. withdrawn",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
				m.reservation.EXPECT().Create(gomock.Any(), testScope, "u-1", int64(42)).
					Return(model.Reservation{}, errs.ErrGameWithdrawn)
			},
			body: `{"libraryGameId":42}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"failed to reserve game"}`,
			},
		},
		{
			name: "err. missing game id",
			mockBehavior: func(m mocks) {
				m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
			},
			body: `{}`,
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			w := doRequest(e, http.MethodPost, "/api/v1/reservations", signToken(t, "u-1", ""), tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SetGameStatus(t *testing.T) {
	t.Parallel()

	t.Run("staff can set status", func(t *testing.T) {
		t.Parallel()
		e, m := newTestRouter(t)
		m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
		m.library.EXPECT().SetGameStatus(gomock.Any(), testScope, int64(10), model.StatusNotAvailable).Return(nil)

		w := doRequest(e, http.MethodPatch, "/api/v1/games/10/status",
			signToken(t, "u-staff", auth.RoleStaff), `{"status":"not-available"}`)

		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("plain member is forbidden", func(t *testing.T) {
		t.Parallel()
		e, m := newTestRouter(t)
		m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)

		w := doRequest(e, http.MethodPatch, "/api/v1/games/10/status",
			signToken(t, "u-1", ""), `{"status":"not-available"}`)

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, `{"message":"insufficient role"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_GetGame_notFound(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.tenant.EXPECT().ResolveByHostname(gomock.Any(), testHost).Return(testTenant, nil)
	m.library.EXPECT().GetGame(gomock.Any(), testScope, int64(99)).
		Return(model.LibraryGame{}, errs.ErrNotFound)

	w := doRequest(e, http.MethodGet, "/api/v1/games/99", "", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
}
