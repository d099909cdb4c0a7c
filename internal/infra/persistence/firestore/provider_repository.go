package firestore

import (
	"cmp"
	"context"
	"slices"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	sess session
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(client *firestore.Client) repository.ProviderRepository {
	return &providerRepository{sess: newSession(client)}
}

func (repo *providerRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(providersCollection)
}

// FindProviderByID retrieves a provider by its ID.
func (repo *providerRepository) FindProviderByID(ctx context.Context, id string) (*entity.Provider, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by ID")
	}

	provider, err := toProviderDomain(snap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode provider %s", id)
	}

	return provider, nil
}

// FindAvailableProvidersByService lists available providers offering serviceType.
func (repo *providerRepository) FindAvailableProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error) {
	q := repo.collection().
		Where(fieldServices, "array-contains", serviceType).
		Where(fieldCurrentStatus, "==", string(entity.ProviderStatusAvailable))

	return repo.list(ctx, q)
}

// FindProvidersByService lists providers offering serviceType, or all providers when serviceType is empty.
func (repo *providerRepository) FindProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error) {
	q := repo.collection().Query
	if serviceType != "" {
		q = q.Where(fieldServices, "array-contains", serviceType)
	}

	return repo.list(ctx, q)
}

func (repo *providerRepository) list(ctx context.Context, q firestore.Query) ([]*entity.Provider, error) {
	snaps, err := repo.sess.getAll(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query providers")
	}

	providers := make([]*entity.Provider, 0, len(snaps))
	for _, snap := range snaps {
		provider, err := toProviderDomain(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode provider %s", snap.Ref.ID)
		}
		providers = append(providers, provider)
	}

	slices.SortFunc(providers, func(a, b *entity.Provider) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return providers, nil
}

// UpsertProvider creates the provider or replaces its profile fields.
func (repo *providerRepository) UpsertProvider(ctx context.Context, provider *entity.Provider) error {
	ref := repo.collection().Doc(provider.ID)
	now := repo.sess.now()

	var saved *entity.Provider
	err := repo.sess.run(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return errors.Wrap(err, "failed to read provider")
		}

		if snap == nil || !snap.Exists() {
			created := *provider
			if created.CurrentStatus == "" {
				created.CurrentStatus = entity.ProviderStatusAvailable
			}
			created.UpdatedAt = now
			saved = &created

			return tx.Create(ref, fromProviderDomain(&created))
		}

		existing, err := toProviderDomain(snap)
		if err != nil {
			return errors.Wrap(err, "failed to decode provider")
		}
		existing.Name = provider.Name
		existing.Services = provider.Services
		existing.UpdatedAt = now
		saved = existing

		return tx.Update(ref, []firestore.Update{
			{Path: "name", Value: provider.Name},
			{Path: fieldServices, Value: provider.Services},
			{Path: fieldUpdatedAt, Value: now},
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert provider")
	}

	*provider = *saved

	return nil
}

// UpdateProviderLocation stores the provider's last known location.
func (repo *providerRepository) UpdateProviderLocation(ctx context.Context, id string, location entity.GeoPoint) error {
	return repo.update(ctx, id, []firestore.Update{
		{Path: fieldCurrentLocation, Value: location},
		{Path: fieldUpdatedAt, Value: repo.sess.now()},
	})
}

// ApplyProviderUpdate applies a partial status update and an atomic counter increment.
func (repo *providerRepository) ApplyProviderUpdate(ctx context.Context, update entity.ProviderUpdate) error {
	return repo.update(ctx, update.ProviderID, providerUpdates(update, repo.sess.now()))
}

func (repo *providerRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	ref := repo.collection().Doc(id)

	var err error
	if repo.sess.tx != nil {
		// Missing documents surface as NotFound when the transaction commits.
		err = repo.sess.tx.Update(ref, updates)
	} else {
		_, err = ref.Update(ctx, updates)
	}
	if err != nil {
		if isNotFound(err) {
			return errors.Wrapf(repository.ErrProviderNotFound, "provider %s", id)
		}

		return errors.Wrap(err, "failed to update provider")
	}

	return nil
}
