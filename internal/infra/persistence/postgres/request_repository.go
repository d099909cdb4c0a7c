package postgres

import (
	"context"
	"time"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new service request with a time-ordered ID.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.ServiceRequest) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate request ID")
	}

	requestM := fromRequestDomain(request)
	requestM.ID = id.String()

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return translateWriteError(err, "failed to create service request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a service request by its ID.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	var requestM model.ServiceRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find service request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateRequestStatus writes the status and assignment columns of a request.
func (repo *requestRepository) UpdateRequestStatus(ctx context.Context, request *entity.ServiceRequest) error {
	requestM := fromRequestDomain(request)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceRequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":            requestM.Status,
			"assigned_provider": requestM.AssignedProvider,
			"assigned_at":       requestM.AssignedAt,
			"updated_at":        now,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update service request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	request.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM ServiceRequestModel to a domain ServiceRequest entity.
func toRequestDomain(data *model.ServiceRequestModel) *entity.ServiceRequest {
	if data == nil {
		return nil
	}

	request := &entity.ServiceRequest{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		ServiceType: data.ServiceType,
		Description: data.Description,
		Status:      entity.RequestStatus(data.Status),
		AssignedAt:  data.AssignedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.AssignedProvider != nil {
		request.AssignedProvider = *data.AssignedProvider
	}
	if data.Latitude != nil && data.Longitude != nil {
		request.Location = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return request
}

// fromRequestDomain converts a domain ServiceRequest entity to a GORM ServiceRequestModel.
func fromRequestDomain(data *entity.ServiceRequest) *model.ServiceRequestModel {
	if data == nil {
		return nil
	}

	requestM := &model.ServiceRequestModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		ServiceType: data.ServiceType,
		Description: data.Description,
		Status:      string(data.Status),
		AssignedAt:  data.AssignedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.AssignedProvider != "" {
		provider := data.AssignedProvider
		requestM.AssignedProvider = &provider
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		requestM.Latitude = &lat
		requestM.Longitude = &lng
	}

	return requestM
}
