package dispatch

import (
	"fmt"
	"testing"

	"mastercraft/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanNewRequestNotifications_ScenarioA(t *testing.T) {
	request := &entity.ServiceRequest{ID: "r1", CustomerID: "c1", ServiceType: "plumbing", Status: entity.RequestStatusPending}
	providers := []*entity.Provider{
		{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
		{ID: "p2", Services: []string{"electrical"}, CurrentStatus: entity.ProviderStatusAvailable},
	}

	notifications := PlanNewRequestNotifications(request, providers)

	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Equal(t, "p1", n.UserID)
	assert.Equal(t, entity.NotificationTypeNewRequest, n.Type)
	assert.Equal(t, "r1", n.RelatedID)
	assert.False(t, n.Read)
	assert.Equal(t, "New Service Request", n.Title)
	assert.Equal(t, "A new plumbing request is available in your area", n.Body)
}

func TestPlanNewRequestNotifications_NoEligibleProviders(t *testing.T) {
	request := &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"}

	assert.Empty(t, PlanNewRequestNotifications(request, nil))
	assert.Empty(t, PlanNewRequestNotifications(request, []*entity.Provider{
		{ID: "busy", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusOnJob},
		{ID: "other", Services: []string{"painting"}, CurrentStatus: entity.ProviderStatusAvailable},
	}))
}

func TestPlanNewRequestNotifications_FanOut(t *testing.T) {
	request := &entity.ServiceRequest{ID: "r42", ServiceType: "plumbing"}

	const n = 25
	providers := make([]*entity.Provider, 0, n+1)
	for i := range n {
		providers = append(providers, &entity.Provider{
			ID:            fmt.Sprintf("p%02d", i),
			Services:      []string{"electrical", "plumbing"},
			CurrentStatus: entity.ProviderStatusAvailable,
		})
	}
	// The same provider listed twice is notified once.
	providers = append(providers, providers[0])

	notifications := PlanNewRequestNotifications(request, providers)

	require.Len(t, notifications, n)
	recipients := make(map[string]bool, n)
	for _, notification := range notifications {
		assert.Equal(t, "r42", notification.RelatedID)
		assert.Equal(t, entity.NotificationTypeNewRequest, notification.Type)
		recipients[notification.UserID] = true
	}
	assert.Len(t, recipients, n)
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		provider *entity.Provider
		want     bool
	}{
		{"available and offering", &entity.Provider{Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable}, true},
		{"on a job", &entity.Provider{Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusOnJob}, false},
		{"other service", &entity.Provider{Services: []string{"electrical"}, CurrentStatus: entity.ProviderStatusAvailable}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.provider, "plumbing"))
		})
	}
}
