// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// ProviderStatus is the availability of a provider.
type ProviderStatus string

const (
	ProviderStatusAvailable ProviderStatus = "available"
	ProviderStatusOnJob     ProviderStatus = "onJob"
)

// IsValid checks if the provider status is a known value.
func (s ProviderStatus) IsValid() bool {
	return s == ProviderStatusAvailable || s == ProviderStatusOnJob
}

// Provider represents a service provider who can be matched to requests.
type Provider struct {
	ID              string         `json:"id"`                         // Same identifier as the provider's user account.
	Name            string         `json:"name,omitempty"`             // Display name.
	Services        []string       `json:"services"`                   // Service tags the provider offers.
	CurrentStatus   ProviderStatus `json:"current_status"`             // Availability.
	CurrentLocation *GeoPoint      `json:"current_location,omitempty"` // Last known location, if reported.
	CompletedJobs   int            `json:"completed_jobs"`             // Number of completed jobs.
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OffersService reports whether the provider offers serviceType.
func (p *Provider) OffersService(serviceType string) bool {
	return slices.Contains(p.Services, serviceType)
}

// IsAvailable reports whether the provider can take a new job.
func (p *Provider) IsAvailable() bool {
	return p.CurrentStatus == ProviderStatusAvailable
}

// ProviderUpdate is a partial update of a provider produced by a lifecycle transition.
type ProviderUpdate struct {
	ProviderID         string         `json:"provider_id"`
	Status             ProviderStatus `json:"status,omitempty"`               // Empty leaves the status untouched.
	CompletedJobsDelta int            `json:"completed_jobs_delta,omitempty"` // Applied as an atomic increment.
}
