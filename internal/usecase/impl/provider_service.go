package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(providerRepo repository.ProviderRepository, logger *slog.Logger) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// GetProvider returns the caller's provider profile.
func (srv *providerService) GetProvider(ctx context.Context, caller *service.CallerIdentity) (*entity.Provider, error) {
	if err := requireProvider(caller); err != nil {
		return nil, err
	}

	provider, err := srv.providerRepo.FindProviderByID(ctx, caller.UID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProviderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}

	return provider, nil
}

// UpsertProvider creates or updates the caller's profile. New providers start available.
func (srv *providerService) UpsertProvider(ctx context.Context, caller *service.CallerIdentity, input *usecase.UpsertProviderInput) (*entity.Provider, error) {
	if err := requireProvider(caller); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile is required")
	}

	services := normalizeServices(input.Services)
	if len(services) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one service is required")
	}

	provider := &entity.Provider{
		ID:            caller.UID,
		Name:          strings.TrimSpace(input.Name),
		Services:      services,
		CurrentStatus: entity.ProviderStatusAvailable,
	}
	if err := srv.providerRepo.UpsertProvider(ctx, provider); err != nil {
		return nil, errors.Wrap(err, "failed to upsert provider")
	}

	srv.logger.InfoContext(ctx, "Provider profile saved", slog.String("providerID", provider.ID), slog.Any("services", provider.Services))

	return provider, nil
}

// UpdateLocation stores the caller's last known location.
func (srv *providerService) UpdateLocation(ctx context.Context, caller *service.CallerIdentity, location entity.GeoPoint) error {
	if err := requireProvider(caller); err != nil {
		return err
	}
	if !isFinite(location.Latitude) || !isFinite(location.Longitude) || !location.IsValid() {
		return domainerrors.ErrInvalidArgument.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	if err := srv.providerRepo.UpdateProviderLocation(ctx, caller.UID, location); err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return errors.WithStack(domainerrors.ErrProviderNotFound)
		}

		return errors.Wrap(err, "failed to update provider location")
	}

	return nil
}

func requireProvider(caller *service.CallerIdentity) error {
	if caller == nil || caller.UID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if !caller.HasRole(entity.RoleProvider) {
		return domainerrors.ErrForbidden.WithDetails("provider role required")
	}

	return nil
}

// normalizeServiceType is the canonical form of a service tag in storage and queries.
func normalizeServiceType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeServices trims, lowercases and de-duplicates service tags.
func normalizeServices(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeServiceType(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}
