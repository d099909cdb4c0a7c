package firestore

import (
	"time"

	"mastercraft/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

// Field paths used in queries and partial updates.
const (
	fieldServices        = "services"
	fieldCurrentStatus   = "currentStatus"
	fieldCurrentLocation = "currentLocation"
	fieldCompletedJobs   = "completedJobs"
	fieldUpdatedAt       = "updatedAt"
	fieldUserID          = "userId"
	fieldCreatedAt       = "createdAt"
	fieldRead            = "read"
)

type providerDoc struct {
	Name            string           `firestore:"name"`
	Services        []string         `firestore:"services"`
	CurrentStatus   string           `firestore:"currentStatus"`
	CurrentLocation *entity.GeoPoint `firestore:"currentLocation,omitempty"`
	CompletedJobs   int64            `firestore:"completedJobs"`
	UpdatedAt       time.Time        `firestore:"updatedAt"`
}

type requestDoc struct {
	CustomerID       string           `firestore:"customerId"`
	ServiceType      string           `firestore:"serviceType"`
	Description      string           `firestore:"description,omitempty"`
	Location         *entity.GeoPoint `firestore:"location,omitempty"`
	Status           string           `firestore:"status"`
	AssignedProvider string           `firestore:"assignedProvider,omitempty"`
	AssignedAt       *time.Time       `firestore:"assignedAt,omitempty"`
	CreatedAt        time.Time        `firestore:"createdAt"`
	UpdatedAt        time.Time        `firestore:"updatedAt"`
}

type notificationDoc struct {
	UserID    string    `firestore:"userId"`
	Title     string    `firestore:"title"`
	Body      string    `firestore:"body"`
	Type      string    `firestore:"type"`
	RelatedID string    `firestore:"relatedId"`
	Read      bool      `firestore:"read"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type appliedEventDoc struct {
	Handler      string    `firestore:"handler"`
	RequestID    string    `firestore:"requestId"`
	TargetStatus string    `firestore:"targetStatus,omitempty"`
	AppliedAt    time.Time `firestore:"appliedAt"`
}

// --- Mapper Functions ---

func toProviderDomain(snap *firestore.DocumentSnapshot) (*entity.Provider, error) {
	var doc providerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.Provider{
		ID:              snap.Ref.ID,
		Name:            doc.Name,
		Services:        doc.Services,
		CurrentStatus:   entity.ProviderStatus(doc.CurrentStatus),
		CurrentLocation: doc.CurrentLocation,
		CompletedJobs:   int(doc.CompletedJobs),
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}

func fromProviderDomain(data *entity.Provider) *providerDoc {
	return &providerDoc{
		Name:            data.Name,
		Services:        data.Services,
		CurrentStatus:   string(data.CurrentStatus),
		CurrentLocation: data.CurrentLocation,
		CompletedJobs:   int64(data.CompletedJobs),
		UpdatedAt:       data.UpdatedAt,
	}
}

func toRequestDomain(snap *firestore.DocumentSnapshot) (*entity.ServiceRequest, error) {
	var doc requestDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.ServiceRequest{
		ID:               snap.Ref.ID,
		CustomerID:       doc.CustomerID,
		ServiceType:      doc.ServiceType,
		Description:      doc.Description,
		Location:         doc.Location,
		Status:           entity.RequestStatus(doc.Status),
		AssignedProvider: doc.AssignedProvider,
		AssignedAt:       doc.AssignedAt,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}, nil
}

func fromRequestDomain(data *entity.ServiceRequest) *requestDoc {
	return &requestDoc{
		CustomerID:       data.CustomerID,
		ServiceType:      data.ServiceType,
		Description:      data.Description,
		Location:         data.Location,
		Status:           string(data.Status),
		AssignedProvider: data.AssignedProvider,
		AssignedAt:       data.AssignedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toNotificationDomain(snap *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var doc notificationDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &entity.Notification{
		ID:        snap.Ref.ID,
		UserID:    doc.UserID,
		Title:     doc.Title,
		Body:      doc.Body,
		Type:      entity.NotificationType(doc.Type),
		RelatedID: doc.RelatedID,
		Read:      doc.Read,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func fromNotificationDomain(data *entity.Notification) *notificationDoc {
	return &notificationDoc{
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      string(data.Type),
		RelatedID: data.RelatedID,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

func fromAppliedEventDomain(data entity.AppliedEvent) *appliedEventDoc {
	return &appliedEventDoc{
		Handler:      data.Handler,
		RequestID:    data.RequestID,
		TargetStatus: string(data.TargetStatus),
		AppliedAt:    data.AppliedAt,
	}
}

// providerUpdates converts a lifecycle provider update into Firestore field updates.
// The counter uses a server-side increment so concurrent completions are not lost.
func providerUpdates(update entity.ProviderUpdate, now time.Time) []firestore.Update {
	updates := []firestore.Update{{Path: fieldUpdatedAt, Value: now}}
	if update.Status != "" {
		updates = append(updates, firestore.Update{Path: fieldCurrentStatus, Value: string(update.Status)})
	}
	if update.CompletedJobsDelta != 0 {
		updates = append(updates, firestore.Update{Path: fieldCompletedJobs, Value: firestore.Increment(update.CompletedJobsDelta)})
	}

	return updates
}
