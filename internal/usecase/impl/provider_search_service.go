package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"mastercraft/config"
	"mastercraft/internal/domain/dispatch"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerSearchService struct {
	providerRepo    repository.ProviderRepository
	filter          *dispatch.GeoFilter
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// ProviderSearchServiceParams holds dependencies for the nearby search, injected by Fx.
type ProviderSearchServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProviderSearchService creates the nearby provider search
func NewProviderSearchService(params ProviderSearchServiceParams) usecase.ProviderSearchUsecase {
	svc := &providerSearchService{
		providerRepo:    params.ProviderRepo,
		defaultRadiusKm: dispatch.DefaultMaxDistanceKm,
		logger:          params.Logger,
	}

	multiplier := 0.0
	if m := params.Config.Matching; m != nil {
		if m.DefaultRadiusKm > 0 {
			svc.defaultRadiusKm = m.DefaultRadiusKm
		}
		svc.maxRadiusKm = m.MaxRadiusKm
		multiplier = m.PreFilterRadiusMultiplier
	}
	svc.filter = dispatch.NewGeoFilter(multiplier)

	return svc
}

// FindNearbyProviders returns providers offering the requested service within
// maxDistance km of the point, nearest first.
func (s *providerSearchService) FindNearbyProviders(ctx context.Context, caller *service.CallerIdentity, input *usecase.NearbyProvidersInput) ([]dispatch.NearbyProvider, error) {
	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	point, radiusKm, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	serviceType := normalizeServiceType(input.ServiceType)
	candidates, err := s.providerRepo.FindProvidersByService(ctx, serviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query providers")
	}

	nearby := s.filter.FindNearby(point, candidates, serviceType, radiusKm)

	s.logger.DebugContext(ctx, "Nearby providers found",
		slog.String("uid", caller.UID),
		slog.String("serviceType", serviceType),
		slog.Float64("radiusKm", radiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(nearby)),
	)

	return nearby, nil
}

func (s *providerSearchService) validate(input *usecase.NearbyProvidersInput) (entity.GeoPoint, float64, error) {
	if input == nil || input.Latitude == nil || input.Longitude == nil {
		return entity.GeoPoint{}, 0, domainerrors.ErrInvalidArgument
	}

	point := entity.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	if !isFinite(point.Latitude) || !isFinite(point.Longitude) || !point.IsValid() {
		return entity.GeoPoint{}, 0, domainerrors.ErrInvalidArgument.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	radiusKm := s.defaultRadiusKm
	if input.MaxDistance != nil {
		radiusKm = *input.MaxDistance
	}
	if !isFinite(radiusKm) || radiusKm < 0 {
		return entity.GeoPoint{}, 0, domainerrors.ErrInvalidArgument.WithDetails("maxDistance must be a non-negative number")
	}
	if s.maxRadiusKm > 0 && radiusKm > s.maxRadiusKm {
		return entity.GeoPoint{}, 0, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("maxDistance must not exceed %g km", s.maxRadiusKm))
	}

	return point, radiusKm, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
