package firestore

import (
	"context"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	sess session
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &requestRepository{sess: newSession(client)}
}

func (repo *requestRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(requestsCollection)
}

// CreateRequest stores a new request under an auto-generated document ID.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.ServiceRequest) error {
	ref := repo.collection().NewDoc()
	now := repo.sess.now()

	created := *request
	created.ID = ref.ID
	created.CreatedAt = now
	created.UpdatedAt = now

	err := repo.sess.run(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return tx.Create(ref, fromRequestDomain(&created))
	})
	if err != nil {
		return errors.Wrap(err, "failed to create service request")
	}

	*request = created

	return nil
}

// FindRequestByID retrieves a request by its ID.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find service request by ID")
	}

	request, err := toRequestDomain(snap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode service request %s", id)
	}

	return request, nil
}

// UpdateRequestStatus writes status and assignment fields of an existing request.
func (repo *requestRepository) UpdateRequestStatus(ctx context.Context, request *entity.ServiceRequest) error {
	ref := repo.collection().Doc(request.ID)
	now := repo.sess.now()

	updates := []firestore.Update{
		{Path: "status", Value: string(request.Status)},
		{Path: "assignedProvider", Value: request.AssignedProvider},
		{Path: "assignedAt", Value: request.AssignedAt},
		{Path: fieldUpdatedAt, Value: now},
	}

	var err error
	if repo.sess.tx != nil {
		err = repo.sess.tx.Update(ref, updates)
	} else {
		_, err = ref.Update(ctx, updates)
	}
	if err != nil {
		if isNotFound(err) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update service request status")
	}

	request.UpdatedAt = now

	return nil
}
