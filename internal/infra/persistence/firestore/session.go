package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// session routes repository calls either straight to the client or through the
// transaction the repository was created for.
type session struct {
	client *firestore.Client
	tx     *firestore.Transaction
	now    func() time.Time
}

func newSession(client *firestore.Client) session {
	return session{client: client, now: time.Now}
}

func (s session) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s session) getAll(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Documents(q).GetAll()
	}

	return q.Documents(ctx).GetAll()
}

// run executes fn in the bound transaction, or in a new one when the session
// is not transactional. fn must do all of its reads before its first write.
func (s session) run(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) error) error {
	if s.tx != nil {
		return fn(ctx, s.tx)
	}

	return s.client.RunTransaction(ctx, fn)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
