package firestore

import (
	"testing"
	"time"

	"mastercraft/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderUpdates(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	updates := providerUpdates(entity.ProviderUpdate{
		ProviderID:         "p1",
		Status:             entity.ProviderStatusAvailable,
		CompletedJobsDelta: 1,
	}, now)

	require.Len(t, updates, 3)
	assert.Equal(t, firestore.Update{Path: fieldUpdatedAt, Value: now}, updates[0])
	assert.Equal(t, firestore.Update{Path: fieldCurrentStatus, Value: "available"}, updates[1])
	assert.Equal(t, fieldCompletedJobs, updates[2].Path)
	assert.Equal(t, firestore.Increment(1), updates[2].Value)
}

func TestProviderUpdates_StatusOnly(t *testing.T) {
	updates := providerUpdates(entity.ProviderUpdate{ProviderID: "p1", Status: entity.ProviderStatusOnJob}, time.Now())

	require.Len(t, updates, 2)
	assert.Equal(t, fieldCurrentStatus, updates[1].Path)
	assert.Equal(t, "onJob", updates[1].Value)
}

func TestFromRequestDomain(t *testing.T) {
	assignedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	doc := fromRequestDomain(&entity.ServiceRequest{
		ID:               "r1",
		CustomerID:       "c1",
		ServiceType:      "plumbing",
		Status:           entity.RequestStatusAssigned,
		AssignedProvider: "p1",
		AssignedAt:       &assignedAt,
	})

	assert.Equal(t, "c1", doc.CustomerID)
	assert.Equal(t, "assigned", doc.Status)
	assert.Equal(t, "p1", doc.AssignedProvider)
	assert.Equal(t, &assignedAt, doc.AssignedAt)
}
