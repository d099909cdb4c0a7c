package impl

import (
	"context"
	"testing"

	"mastercraft/config"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	mockRepo "mastercraft/internal/mocks/repository"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func createTestProviderSearchService(t *testing.T, matching *config.MatchingConfig) (usecase.ProviderSearchUsecase, *mockRepo.MockProviderRepository) {
	providerRepo := mockRepo.NewMockProviderRepository(t)
	svc := NewProviderSearchService(ProviderSearchServiceParams{
		ProviderRepo: providerRepo,
		Config:       &config.Config{Matching: matching},
		Logger:       discardLogger(),
	})

	return svc, providerRepo
}

func located(id string, lat, lng float64, services ...string) *entity.Provider {
	return &entity.Provider{
		ID:              id,
		Services:        services,
		CurrentStatus:   entity.ProviderStatusAvailable,
		CurrentLocation: &entity.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

func TestProviderSearchService_Unauthenticated(t *testing.T) {
	svc, _ := createTestProviderSearchService(t, nil)

	_, err := svc.FindNearbyProviders(context.Background(), nil, &usecase.NearbyProvidersInput{
		Latitude:  ptr(24.7136),
		Longitude: ptr(46.6753),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProviderSearchService_InvalidArguments(t *testing.T) {
	svc, _ := createTestProviderSearchService(t, &config.MatchingConfig{MaxRadiusKm: 50})
	caller := customerCaller("c1")

	tests := []struct {
		name  string
		input *usecase.NearbyProvidersInput
	}{
		{"nil input", nil},
		{"missing latitude", &usecase.NearbyProvidersInput{Longitude: ptr(46.6753)}},
		{"missing longitude", &usecase.NearbyProvidersInput{Latitude: ptr(24.7136)}},
		{"latitude out of range", &usecase.NearbyProvidersInput{Latitude: ptr(91.0), Longitude: ptr(0.0)}},
		{"negative radius", &usecase.NearbyProvidersInput{Latitude: ptr(0.0), Longitude: ptr(0.0), MaxDistance: ptr(-1.0)}},
		{"radius above limit", &usecase.NearbyProvidersInput{Latitude: ptr(0.0), Longitude: ptr(0.0), MaxDistance: ptr(51.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindNearbyProviders(context.Background(), caller, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestProviderSearchService_ScenarioC(t *testing.T) {
	ctx := context.Background()
	svc, providerRepo := createTestProviderSearchService(t, &config.MatchingConfig{DefaultRadiusKm: 10, PreFilterRadiusMultiplier: 1.3})

	providerRepo.EXPECT().FindProvidersByService(ctx, "plumbing").Return([]*entity.Provider{
		located("p1", 24.8, 46.7, "plumbing"),
	}, nil).Twice()

	nearby, err := svc.FindNearbyProviders(ctx, customerCaller("c1"), &usecase.NearbyProvidersInput{
		Latitude:    ptr(24.7136),
		Longitude:   ptr(46.6753),
		ServiceType: "plumbing",
	})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.InDelta(t, 9.9, nearby[0].DistanceKm, 1e-9)

	nearby, err = svc.FindNearbyProviders(ctx, customerCaller("c1"), &usecase.NearbyProvidersInput{
		Latitude:    ptr(24.7136),
		Longitude:   ptr(46.6753),
		ServiceType: "plumbing",
		MaxDistance: ptr(9.9),
	})
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestProviderSearchService_ZeroCoordinatesAreValid(t *testing.T) {
	ctx := context.Background()
	svc, providerRepo := createTestProviderSearchService(t, nil)

	providerRepo.EXPECT().FindProvidersByService(ctx, "").Return([]*entity.Provider{
		located("far", 0.05, 0.05, "plumbing"),
		located("near", 0.01, 0, "electrical"),
		{ID: "unlocated", Services: []string{"plumbing"}},
	}, nil)

	nearby, err := svc.FindNearbyProviders(ctx, providerCaller("p9"), &usecase.NearbyProvidersInput{
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
	})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "near", nearby[0].Provider.ID)
	assert.Equal(t, "far", nearby[1].Provider.ID)
}

func TestProviderSearchService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, providerRepo := createTestProviderSearchService(t, nil)
	errStore := errors.New("unavailable")

	providerRepo.EXPECT().FindProvidersByService(ctx, "plumbing").Return(nil, errStore)

	_, err := svc.FindNearbyProviders(ctx, customerCaller("c1"), &usecase.NearbyProvidersInput{
		Latitude:    ptr(1.0),
		Longitude:   ptr(1.0),
		ServiceType: "plumbing",
	})

	assert.ErrorIs(t, err, errStore)
}

func TestProviderSearchService_NormalizesServiceType(t *testing.T) {
	ctx := context.Background()
	svc, providerRepo := createTestProviderSearchService(t, nil)

	providerRepo.EXPECT().FindProvidersByService(ctx, "plumbing").Return([]*entity.Provider{
		located("p1", 24.8, 46.7, "plumbing"),
	}, nil).Once()

	nearby, err := svc.FindNearbyProviders(ctx, customerCaller("c1"), &usecase.NearbyProvidersInput{
		Latitude:    ptr(24.7136),
		Longitude:   ptr(46.6753),
		ServiceType: "  Plumbing ",
	})

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "p1", nearby[0].Provider.ID)
}
