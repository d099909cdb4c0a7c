package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mastercraft/config"
	"mastercraft/internal/delivery/api/router"
	"mastercraft/internal/delivery/api/router/handler"
	"mastercraft/internal/delivery/middleware"
	"mastercraft/internal/domain/dispatch"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/service"
	mockSvc "mastercraft/internal/mocks/service"
	mockUC "mastercraft/internal/mocks/usecase"
	"mastercraft/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo           *echo.Echo
	verifier       *mockSvc.MockTokenVerifier
	searchUC       *mockUC.MockProviderSearchUsecase
	providerUC     *mockUC.MockProviderUsecase
	requestUC      *mockUC.MockRequestUsecase
	notificationUC *mockUC.MockNotificationUsecase
}

var (
	customer = &service.CallerIdentity{UID: "c1", Roles: entity.Roles{entity.RoleCustomer}}
	provider = &service.CallerIdentity{UID: "p1", Roles: entity.Roles{entity.RoleProvider}}
)

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx := &apiFixture{
		verifier:       mockSvc.NewMockTokenVerifier(t),
		searchUC:       mockUC.NewMockProviderSearchUsecase(t),
		providerUC:     mockUC.NewMockProviderUsecase(t),
		requestUC:      mockUC.NewMockRequestUsecase(t),
		notificationUC: mockUC.NewMockNotificationUsecase(t),
	}
	fx.verifier.EXPECT().VerifyToken(mock.Anything, "customer-token").Return(customer, nil).Maybe()
	fx.verifier.EXPECT().VerifyToken(mock.Anything, "provider-token").Return(provider, nil).Maybe()

	fx.echo = NewEcho(cfg, logger, router.RouterParams{
		ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{
			SearchUC:   fx.searchUC,
			ProviderUC: fx.providerUC,
			Logger:     logger,
		}),
		RequestHandler: handler.NewRequestHandler(handler.RequestHandlerParams{
			RequestUC: fx.requestUC,
			Logger:    logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: fx.notificationUC,
			Logger:         logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.verifier, logger),
	})

	return fx
}

func (f *apiFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-Id", "req-1")
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFindNearby(t *testing.T) {
	fx := newAPIFixture(t)
	near := &entity.Provider{
		ID:              "p-near",
		Name:            "Near Plumbing",
		Services:        []string{"plumbing"},
		CurrentStatus:   entity.ProviderStatusAvailable,
		CurrentLocation: &entity.GeoPoint{Latitude: 24.8, Longitude: 46.7},
	}

	fx.searchUC.EXPECT().
		FindNearbyProviders(mock.Anything, customer, mock.MatchedBy(func(in *usecase.NearbyProvidersInput) bool {
			return in.Latitude != nil && *in.Latitude == 24.7136 &&
				in.Longitude != nil && *in.Longitude == 46.6753 &&
				in.ServiceType == "plumbing" && in.MaxDistance == nil
		})).
		Return([]dispatch.NearbyProvider{{Provider: near, DistanceKm: 9.9}}, nil).Twice()

	body := `{"latitude":24.7136,"longitude":46.6753,"serviceType":"plumbing"}`

	t.Run("json", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers/nearby", "customer-token", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Equal(t, "req-1", env.Meta.RequestID)

		var data struct {
			Providers []map[string]any `json:"providers"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Providers, 1)
		assert.Equal(t, "p-near", data.Providers[0]["id"])
		assert.Equal(t, 9.9, data.Providers[0]["distance"])
		assert.Equal(t, "available", data.Providers[0]["current_status"])
	})

	t.Run("geojson", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers/nearby?format=geojson", "customer-token", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var fc struct {
			Type     string `json:"type"`
			Features []struct {
				ID       string `json:"id"`
				Geometry struct {
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
		require.Len(t, fc.Features, 1)
		assert.Equal(t, "p-near", fc.Features[0].ID)
		assert.Equal(t, []float64{46.7, 24.8}, fc.Features[0].Geometry.Coordinates)
		assert.Equal(t, 9.9, fc.Features[0].Properties["distance"])
	})
}

func TestFindNearby_Errors(t *testing.T) {
	fx := newAPIFixture(t)
	fx.searchUC.EXPECT().FindNearbyProviders(mock.Anything, customer, mock.Anything).
		Return(nil, domainerrors.ErrInvalidArgument).Once()

	t.Run("unauthenticated", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers/nearby", "", `{"latitude":1,"longitude":2}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
		assert.Equal(t, "req-1", env.Meta.RequestID)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers/nearby", "customer-token", `{"serviceType":"plumbing"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
		assert.Equal(t, "Latitude and longitude are required.", env.Error.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers/nearby", "customer-token", `{"latitude":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec).Error.Code)
	})
}

func TestProviderSelfService(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("customers are forbidden", func(t *testing.T) {
		rec := fx.do(http.MethodPut, "/api/v1/providers/me", "customer-token", `{"name":"x","services":["plumbing"]}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("upsert", func(t *testing.T) {
		fx.providerUC.EXPECT().
			UpsertProvider(mock.Anything, provider, &usecase.UpsertProviderInput{Name: "Ali", Services: []string{"plumbing"}}).
			Return(&entity.Provider{ID: "p1", Name: "Ali", Services: []string{"plumbing"}}, nil).Once()

		rec := fx.do(http.MethodPut, "/api/v1/providers/me", "provider-token", `{"name":"Ali","services":["plumbing"]}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("upsert validation", func(t *testing.T) {
		rec := fx.do(http.MethodPut, "/api/v1/providers/me", "provider-token", `{"name":"Ali","services":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "Services")
	})

	t.Run("location", func(t *testing.T) {
		fx.providerUC.EXPECT().
			UpdateLocation(mock.Anything, provider, entity.GeoPoint{Latitude: 0, Longitude: 46.7}).
			Return(nil).Once()

		rec := fx.do(http.MethodPut, "/api/v1/providers/me/location", "provider-token", `{"latitude":0,"longitude":46.7}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("location out of range", func(t *testing.T) {
		rec := fx.do(http.MethodPut, "/api/v1/providers/me/location", "provider-token", `{"latitude":120,"longitude":46.7}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get me not found", func(t *testing.T) {
		fx.providerUC.EXPECT().GetProvider(mock.Anything, provider).Return(nil, domainerrors.ErrProviderNotFound).Once()

		rec := fx.do(http.MethodGet, "/api/v1/providers/me", "provider-token", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROVIDER_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestRequests(t *testing.T) {
	fx := newAPIFixture(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	created := &entity.ServiceRequest{
		ID:          "r1",
		CustomerID:  "c1",
		ServiceType: "plumbing",
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("create", func(t *testing.T) {
		fx.requestUC.EXPECT().
			CreateRequest(mock.Anything, customer, &usecase.CreateRequestInput{ServiceType: "plumbing", Description: "leak"}).
			Return(created, nil).Once()

		rec := fx.do(http.MethodPost, "/api/v1/requests", "customer-token", `{"serviceType":"plumbing","description":"leak"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var got entity.ServiceRequest
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, "r1", got.ID)
		assert.Equal(t, entity.RequestStatusPending, got.Status)
	})

	t.Run("create requires service type", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/requests", "customer-token", `{"description":"leak"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("get", func(t *testing.T) {
		fx.requestUC.EXPECT().GetRequest(mock.Anything, customer, "r1").Return(created, nil).Once()

		rec := fx.do(http.MethodGet, "/api/v1/requests/r1", "customer-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid transition", func(t *testing.T) {
		fx.requestUC.EXPECT().
			UpdateRequestStatus(mock.Anything, provider, "r1", &usecase.UpdateRequestStatusInput{Status: entity.RequestStatusCompleted}).
			Return(nil, domainerrors.ErrInvalidTransition.WithDetails("pending -> completed")).Once()

		rec := fx.do(http.MethodPatch, "/api/v1/requests/r1/status", "provider-token", `{"status":"completed"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
		assert.Equal(t, "pending -> completed", env.Error.Details)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := fx.do(http.MethodPatch, "/api/v1/requests/r1/status", "provider-token", `{"status":"pending"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure hides details", func(t *testing.T) {
		fx.requestUC.EXPECT().GetRequest(mock.Anything, customer, "r2").
			Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "select failed")).Once()

		rec := fx.do(http.MethodGet, "/api/v1/requests/r2", "customer-token", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestNotifications(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("list", func(t *testing.T) {
		fx.notificationUC.EXPECT().ListNotifications(mock.Anything, customer, 5, 10).
			Return([]*entity.Notification{{ID: "n1", UserID: "c1", Type: entity.NotificationTypeStatusUpdate}}, nil).Once()

		rec := fx.do(http.MethodGet, "/api/v1/notifications?limit=5&offset=10", "customer-token", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got []entity.Notification
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Len(t, got, 1)
	})

	t.Run("list bad limit", func(t *testing.T) {
		rec := fx.do(http.MethodGet, "/api/v1/notifications?limit=ten", "customer-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("mark read", func(t *testing.T) {
		fx.notificationUC.EXPECT().MarkNotificationRead(mock.Anything, customer, "n1").Return(nil).Once()

		rec := fx.do(http.MethodPost, "/api/v1/notifications/n1/read", "customer-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}
