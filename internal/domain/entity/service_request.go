// Package entity contains the core business objects of the project.
package entity

import "time"

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// AllowedTransitions lists the statuses reachable from each status.
var AllowedTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusAssigned, RequestStatusCancelled},
	RequestStatusAssigned:   {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusCompleted:  {},
	RequestStatusCancelled:  {},
}

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s RequestStatus) IsValid() bool {
	_, ok := AllowedTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is expected from s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// CanTransition reports whether the request may move from s to next.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range AllowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// RequiresProvider reports whether a request in status s must carry an assigned provider.
func (s RequestStatus) RequiresProvider() bool {
	switch s {
	case RequestStatusAssigned, RequestStatusInProgress, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// ServiceRequest represents a customer's request for a home service.
type ServiceRequest struct {
	ID               string        `json:"id"`                          // Store-assigned identifier.
	CustomerID       string        `json:"customer_id"`                 // The customer who created the request.
	ServiceType      string        `json:"service_type"`                // Service tag, e.g. "plumbing".
	Description      string        `json:"description,omitempty"`       // Free-form description of the job.
	Location         *GeoPoint     `json:"location,omitempty"`          // Optional job location.
	Status           RequestStatus `json:"status"`                      // Current lifecycle status.
	AssignedProvider string        `json:"assigned_provider,omitempty"` // Empty until a provider is assigned.
	AssignedAt       *time.Time    `json:"assigned_at,omitempty"`       // When the provider was assigned.
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// HasCustomer reports whether the customer of the request is known.
func (r *ServiceRequest) HasCustomer() bool {
	return r != nil && r.CustomerID != ""
}

// HasProvider reports whether a provider is assigned to the request.
func (r *ServiceRequest) HasProvider() bool {
	return r != nil && r.AssignedProvider != ""
}

// Clone returns a deep copy, so snapshots handed to event handlers stay immutable.
func (r *ServiceRequest) Clone() *ServiceRequest {
	if r == nil {
		return nil
	}

	c := *r
	if r.Location != nil {
		loc := *r.Location
		c.Location = &loc
	}
	if r.AssignedAt != nil {
		at := *r.AssignedAt
		c.AssignedAt = &at
	}

	return &c
}
