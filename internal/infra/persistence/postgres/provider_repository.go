package postgres

import (
	"context"
	"time"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

func preloadServices(db *gorm.DB) *gorm.DB {
	return db.Order("service_type")
}

// FindProviderByID retrieves a provider and its services by ID.
func (repo *providerRepository) FindProviderByID(ctx context.Context, id string) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Preload("Services", preloadServices).
		Where("id = ?", id).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by ID")
	}

	return toProviderDomain(&providerM), nil
}

// FindAvailableProvidersByService lists available providers offering serviceType.
func (repo *providerRepository) FindAvailableProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error) {
	query := repo.db.WithContext(ctx).
		Where("current_status = ?", string(entity.ProviderStatusAvailable)).
		Where("id IN (?)", repo.offering(ctx, serviceType))

	return repo.list(query)
}

// FindProvidersByService lists providers offering serviceType, or all providers when serviceType is empty.
func (repo *providerRepository) FindProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error) {
	query := repo.db.WithContext(ctx)
	if serviceType != "" {
		query = query.Where("id IN (?)", repo.offering(ctx, serviceType))
	}

	return repo.list(query)
}

// offering is the sub-query of provider IDs offering serviceType.
func (repo *providerRepository) offering(ctx context.Context, serviceType string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProviderServiceModel{}).
		Select("provider_id").
		Where("service_type = ?", serviceType)
}

func (repo *providerRepository) list(query *gorm.DB) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	if err := query.
		Preload("Services", preloadServices).
		Order("id").
		Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find providers by service")
	}

	providers := make([]*entity.Provider, 0, len(providerModels))
	for _, providerM := range providerModels {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// UpsertProvider creates the provider or replaces its name and services.
func (repo *providerRepository) UpsertProvider(ctx context.Context, provider *entity.Provider) error {
	now := time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ProviderModel
		err := tx.Where("id = ?", provider.ID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := fromProviderDomain(provider)
			if created.CurrentStatus == "" {
				created.CurrentStatus = string(entity.ProviderStatusAvailable)
			}
			created.Services = nil
			if err := tx.Omit(clause.Associations).Create(created).Error; err != nil {
				return translateWriteError(err, "failed to create provider")
			}
		case err != nil:
			return errors.Wrap(err, "failed to read provider")
		default:
			if err := tx.Model(&model.ProviderModel{}).
				Where("id = ?", provider.ID).
				Updates(map[string]any{
					"name":       provider.Name,
					"updated_at": now,
				}).Error; err != nil {
				return translateWriteError(err, "failed to update provider")
			}
		}

		if err := tx.Where("provider_id = ?", provider.ID).Delete(&model.ProviderServiceModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear provider services")
		}
		if rows := toProviderServiceModels(provider.ID, provider.Services); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return translateWriteError(err, "failed to store provider services")
			}
		}

		var saved model.ProviderModel
		if err := tx.Preload("Services", preloadServices).Where("id = ?", provider.ID).First(&saved).Error; err != nil {
			return errors.Wrap(err, "failed to reload provider")
		}
		*provider = *toProviderDomain(&saved)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert provider")
	}

	return nil
}

// UpdateProviderLocation stores the provider's last known location.
func (repo *providerRepository) UpdateProviderLocation(ctx context.Context, id string, location entity.GeoPoint) error {
	return repo.update(ctx, id, map[string]any{
		"latitude":   location.Latitude,
		"longitude":  location.Longitude,
		"updated_at": time.Now(),
	})
}

// ApplyProviderUpdate applies a partial status update. The counter is incremented in SQL
// so concurrent completions are not lost.
func (repo *providerRepository) ApplyProviderUpdate(ctx context.Context, update entity.ProviderUpdate) error {
	fields := map[string]any{"updated_at": time.Now()}
	if update.Status != "" {
		fields["current_status"] = string(update.Status)
	}
	if update.CompletedJobsDelta != 0 {
		fields["completed_jobs"] = gorm.Expr("completed_jobs + ?", update.CompletedJobsDelta)
	}

	return repo.update(ctx, update.ProviderID, fields)
}

func (repo *providerRepository) update(ctx context.Context, id string, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update provider")
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrProviderNotFound, "provider %s", id)
	}

	return nil
}

// --- Mapper Functions ---

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	services := make([]string, 0, len(data.Services))
	for _, s := range data.Services {
		services = append(services, s.ServiceType)
	}

	var location *entity.GeoPoint
	if data.Latitude != nil && data.Longitude != nil {
		location = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return &entity.Provider{
		ID:              data.ID,
		Name:            data.Name,
		Services:        services,
		CurrentStatus:   entity.ProviderStatus(data.CurrentStatus),
		CurrentLocation: location,
		CompletedJobs:   data.CompletedJobs,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	providerM := &model.ProviderModel{
		ID:            data.ID,
		Name:          data.Name,
		CurrentStatus: string(data.CurrentStatus),
		CompletedJobs: data.CompletedJobs,
		UpdatedAt:     data.UpdatedAt,
		Services:      toProviderServiceModels(data.ID, data.Services),
	}
	if data.CurrentLocation != nil {
		lat, lng := data.CurrentLocation.Latitude, data.CurrentLocation.Longitude
		providerM.Latitude = &lat
		providerM.Longitude = &lng
	}

	return providerM
}

func toProviderServiceModels(providerID string, services []string) []model.ProviderServiceModel {
	rows := make([]model.ProviderServiceModel, 0, len(services))
	for _, s := range services {
		rows = append(rows, model.ProviderServiceModel{ProviderID: providerID, ServiceType: s})
	}

	return rows
}
