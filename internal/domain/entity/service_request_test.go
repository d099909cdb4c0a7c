package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestStatusPending, RequestStatusAssigned, true},
		{RequestStatusPending, RequestStatusCancelled, true},
		{RequestStatusPending, RequestStatusInProgress, false},
		{RequestStatusAssigned, RequestStatusInProgress, true},
		{RequestStatusAssigned, RequestStatusCancelled, true},
		{RequestStatusAssigned, RequestStatusCompleted, false},
		{RequestStatusInProgress, RequestStatusCompleted, true},
		{RequestStatusInProgress, RequestStatusCancelled, true},
		{RequestStatusCompleted, RequestStatusCancelled, false},
		{RequestStatusCancelled, RequestStatusPending, false},
		{RequestStatus("unknown"), RequestStatusAssigned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestRequestStatus_Terminal(t *testing.T) {
	assert.True(t, RequestStatusCompleted.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.False(t, RequestStatusInProgress.IsTerminal())
}

func TestServiceRequest_Clone(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	original := &ServiceRequest{
		ID:         "r1",
		Location:   &GeoPoint{Latitude: 1, Longitude: 2},
		AssignedAt: &at,
	}

	clone := original.Clone()
	clone.Location.Latitude = 9
	*clone.AssignedAt = at.Add(time.Hour)

	assert.InDelta(t, 1.0, original.Location.Latitude, 1e-9)
	assert.Equal(t, at, *original.AssignedAt)
	assert.Nil(t, (*ServiceRequest)(nil).Clone())
}

func TestAppliedEvent_Key(t *testing.T) {
	assert.Equal(t, "request.created:r1", AppliedEvent{Handler: HandlerRequestCreated, RequestID: "r1"}.Key())
	assert.Equal(t, "request.status_changed:r1:completed", AppliedEvent{
		Handler:      HandlerStatusChanged,
		RequestID:    "r1",
		TargetStatus: RequestStatusCompleted,
	}.Key())
}
