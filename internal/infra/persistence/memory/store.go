// Package memory is an in-process implementation of the persistence layer.
// It backs local runs and use case tests; every write is applied to a copy of
// the state that replaces the live state only when the whole write succeeds.
package memory

import (
	"context"
	"sync"
	"time"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Module provides the in-memory store and its repositories.
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewProviderRepository,
		NewNotificationRepository,
		NewRequestRepository,
		NewEventLedgerRepository,
	),
)

// Store holds all documents of the in-memory backend.
type Store struct {
	mu    sync.Mutex
	data  *state
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for store-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		data:  newState(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type state struct {
	providers       map[string]*entity.Provider
	requests        map[string]*entity.ServiceRequest
	notifications   map[string]*entity.Notification
	notificationSeq map[string]int64
	ledger          map[string]entity.AppliedEvent
	seq             int64
}

func newState() *state {
	return &state{
		providers:       make(map[string]*entity.Provider),
		requests:        make(map[string]*entity.ServiceRequest),
		notifications:   make(map[string]*entity.Notification),
		notificationSeq: make(map[string]int64),
		ledger:          make(map[string]entity.AppliedEvent),
	}
}

func (st *state) clone() *state {
	c := newState()
	c.seq = st.seq
	for id, p := range st.providers {
		c.providers[id] = cloneProvider(p)
	}
	for id, r := range st.requests {
		c.requests[id] = r.Clone()
	}
	for id, n := range st.notifications {
		copied := *n
		c.notifications[id] = &copied
	}
	for id, seq := range st.notificationSeq {
		c.notificationSeq[id] = seq
	}
	for key, e := range st.ledger {
		c.ledger[key] = e
	}

	return c
}

func cloneProvider(p *entity.Provider) *entity.Provider {
	if p == nil {
		return nil
	}

	c := *p
	c.Services = append([]string(nil), p.Services...)
	if p.CurrentLocation != nil {
		loc := *p.CurrentLocation
		c.CurrentLocation = &loc
	}

	return &c
}

// session gives repositories access to a state. Outside a transaction every
// call works on a private copy that is published on success; inside a
// transaction calls share the transaction's copy.
type session interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
	store() *Store
}

type rootSession struct {
	s *Store
}

func (r rootSession) read(fn func(st *state) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return fn(r.s.data)
}

func (r rootSession) write(fn func(st *state) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	draft := r.s.data.clone()
	if err := fn(draft); err != nil {
		return err
	}
	r.s.data = draft

	return nil
}

func (r rootSession) store() *Store {
	return r.s
}

type txSession struct {
	s     *Store
	draft *state
}

func (t txSession) read(fn func(st *state) error) error {
	return fn(t.draft)
}

func (t txSession) write(fn func(st *state) error) error {
	return fn(t.draft)
}

func (t txSession) store() *Store {
	return t.s
}

type transactionManager struct {
	s *Store
}

// NewTransactionManager creates a transaction manager over the store.
// Transactions are serialized; the store lock is held until commit or rollback.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{s: s}
}

// Execute runs fn against a copy of the state and publishes the copy if fn succeeds.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()

	tx := txSession{s: tm.s, draft: tm.s.data.clone()}
	if err := fn(&repositoryFactory{sess: tx}); err != nil {
		return err
	}
	tm.s.data = tx.draft

	return nil
}

type repositoryFactory struct {
	sess session
}

func (f *repositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return &providerRepository{sess: f.sess}
}

func (f *repositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{sess: f.sess}
}

func (f *repositoryFactory) NewRequestRepository() repository.RequestRepository {
	return &requestRepository{sess: f.sess}
}

func (f *repositoryFactory) NewEventLedgerRepository() repository.EventLedgerRepository {
	return &eventLedgerRepository{sess: f.sess}
}
