package memory

import (
	"cmp"
	"context"
	"slices"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"github.com/pkg/errors"
)

type providerRepository struct {
	sess session
}

// NewProviderRepository creates a provider repository over the store.
func NewProviderRepository(s *Store) repository.ProviderRepository {
	return &providerRepository{sess: rootSession{s: s}}
}

func (repo *providerRepository) FindProviderByID(_ context.Context, id string) (*entity.Provider, error) {
	var found *entity.Provider
	err := repo.sess.read(func(st *state) error {
		p, ok := st.providers[id]
		if !ok {
			return repository.ErrProviderNotFound
		}
		found = cloneProvider(p)

		return nil
	})

	return found, err
}

func (repo *providerRepository) FindAvailableProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error) {
	providers, err := repo.FindProvidersByService(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(providers, func(p *entity.Provider) bool {
		return !p.IsAvailable()
	}), nil
}

func (repo *providerRepository) FindProvidersByService(_ context.Context, serviceType string) ([]*entity.Provider, error) {
	var providers []*entity.Provider
	err := repo.sess.read(func(st *state) error {
		for _, p := range st.providers {
			if serviceType != "" && !p.OffersService(serviceType) {
				continue
			}
			providers = append(providers, cloneProvider(p))
		}

		return nil
	})
	slices.SortFunc(providers, func(a, b *entity.Provider) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return providers, err
}

func (repo *providerRepository) UpsertProvider(_ context.Context, provider *entity.Provider) error {
	now := repo.sess.store().now()

	return repo.sess.write(func(st *state) error {
		existing, ok := st.providers[provider.ID]
		if !ok {
			created := cloneProvider(provider)
			if created.CurrentStatus == "" {
				created.CurrentStatus = entity.ProviderStatusAvailable
			}
			created.UpdatedAt = now
			st.providers[provider.ID] = created
			*provider = *cloneProvider(created)

			return nil
		}

		existing.Name = provider.Name
		existing.Services = append([]string(nil), provider.Services...)
		existing.UpdatedAt = now
		*provider = *cloneProvider(existing)

		return nil
	})
}

func (repo *providerRepository) UpdateProviderLocation(_ context.Context, id string, location entity.GeoPoint) error {
	now := repo.sess.store().now()

	return repo.sess.write(func(st *state) error {
		p, ok := st.providers[id]
		if !ok {
			return repository.ErrProviderNotFound
		}
		p.CurrentLocation = &location
		p.UpdatedAt = now

		return nil
	})
}

func (repo *providerRepository) ApplyProviderUpdate(_ context.Context, update entity.ProviderUpdate) error {
	now := repo.sess.store().now()

	return repo.sess.write(func(st *state) error {
		p, ok := st.providers[update.ProviderID]
		if !ok {
			return errors.Wrapf(repository.ErrProviderNotFound, "provider %s", update.ProviderID)
		}
		if update.Status != "" {
			p.CurrentStatus = update.Status
		}
		p.CompletedJobs += update.CompletedJobsDelta
		p.UpdatedAt = now

		return nil
	})
}

type notificationRepository struct {
	sess session
}

// NewNotificationRepository creates a notification repository over the store.
func NewNotificationRepository(s *Store) repository.NotificationRepository {
	return &notificationRepository{sess: rootSession{s: s}}
}

func (repo *notificationRepository) BatchCreateNotifications(_ context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	s := repo.sess.store()
	now := s.now()
	ids := make([]string, len(notifications))
	for i := range notifications {
		ids[i] = s.newID()
	}

	err := repo.sess.write(func(st *state) error {
		for i, n := range notifications {
			stored := *n
			stored.ID = ids[i]
			stored.CreatedAt = now
			st.seq++
			st.notifications[stored.ID] = &stored
			st.notificationSeq[stored.ID] = st.seq
		}

		return nil
	})
	if err != nil {
		return err
	}

	for i, n := range notifications {
		n.ID = ids[i]
		n.CreatedAt = now
	}

	return nil
}

func (repo *notificationRepository) FindNotificationsByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Notification, error) {
	type ordered struct {
		n   *entity.Notification
		seq int64
	}

	var all []ordered
	err := repo.sess.read(func(st *state) error {
		for id, n := range st.notifications {
			if n.UserID != userID {
				continue
			}
			copied := *n
			all = append(all, ordered{n: &copied, seq: st.notificationSeq[id]})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(all, func(a, b ordered) int {
		if c := b.n.CreatedAt.Compare(a.n.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	if offset >= len(all) {
		return []*entity.Notification{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	result := make([]*entity.Notification, len(all))
	for i, o := range all {
		result[i] = o.n
	}

	return result, nil
}

func (repo *notificationRepository) MarkNotificationRead(_ context.Context, userID, notificationID string) error {
	return repo.sess.write(func(st *state) error {
		n, ok := st.notifications[notificationID]
		if !ok || n.UserID != userID {
			return repository.ErrNotificationNotFound
		}
		n.Read = true

		return nil
	})
}

type requestRepository struct {
	sess session
}

// NewRequestRepository creates a service request repository over the store.
func NewRequestRepository(s *Store) repository.RequestRepository {
	return &requestRepository{sess: rootSession{s: s}}
}

func (repo *requestRepository) CreateRequest(_ context.Context, request *entity.ServiceRequest) error {
	s := repo.sess.store()
	now := s.now()
	id := s.newID()

	err := repo.sess.write(func(st *state) error {
		stored := request.Clone()
		stored.ID = id
		stored.CreatedAt = now
		stored.UpdatedAt = now
		st.requests[id] = stored

		return nil
	})
	if err != nil {
		return err
	}

	request.ID = id
	request.CreatedAt = now
	request.UpdatedAt = now

	return nil
}

func (repo *requestRepository) FindRequestByID(_ context.Context, id string) (*entity.ServiceRequest, error) {
	var found *entity.ServiceRequest
	err := repo.sess.read(func(st *state) error {
		r, ok := st.requests[id]
		if !ok {
			return repository.ErrRequestNotFound
		}
		found = r.Clone()

		return nil
	})

	return found, err
}

func (repo *requestRepository) UpdateRequestStatus(_ context.Context, request *entity.ServiceRequest) error {
	now := repo.sess.store().now()

	err := repo.sess.write(func(st *state) error {
		stored, ok := st.requests[request.ID]
		if !ok {
			return repository.ErrRequestNotFound
		}
		updated := request.Clone()
		stored.Status = updated.Status
		stored.AssignedProvider = updated.AssignedProvider
		stored.AssignedAt = updated.AssignedAt
		stored.UpdatedAt = now

		return nil
	})
	if err != nil {
		return err
	}

	request.UpdatedAt = now

	return nil
}

type eventLedgerRepository struct {
	sess session
}

// NewEventLedgerRepository creates an applied event ledger over the store.
func NewEventLedgerRepository(s *Store) repository.EventLedgerRepository {
	return &eventLedgerRepository{sess: rootSession{s: s}}
}

func (repo *eventLedgerRepository) RecordEvent(_ context.Context, event entity.AppliedEvent) (bool, error) {
	now := repo.sess.store().now()
	applied := false

	err := repo.sess.write(func(st *state) error {
		key := event.Key()
		if _, ok := st.ledger[key]; ok {
			return nil
		}
		if event.AppliedAt.IsZero() {
			event.AppliedAt = now
		}
		st.ledger[key] = event
		applied = true

		return nil
	})

	return applied, err
}
