package dispatch

import (
	"fmt"

	"mastercraft/internal/domain/entity"
)

const newRequestTitle = "New Service Request"

// IsEligible reports whether provider can be offered a request for serviceType.
func IsEligible(provider *entity.Provider, serviceType string) bool {
	return provider != nil && provider.IsAvailable() && provider.OffersService(serviceType)
}

// PlanNewRequestNotifications builds one new_request notification per eligible
// provider. Ineligible candidates are ignored, so the store query may be broader
// than the eligibility rule.
func PlanNewRequestNotifications(request *entity.ServiceRequest, candidates []*entity.Provider) []*entity.Notification {
	if request == nil {
		return nil
	}

	notifications := make([]*entity.Notification, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, provider := range candidates {
		if !IsEligible(provider, request.ServiceType) {
			continue
		}
		if _, dup := seen[provider.ID]; dup {
			continue
		}
		seen[provider.ID] = struct{}{}

		notifications = append(notifications, &entity.Notification{
			UserID:    provider.ID,
			Title:     newRequestTitle,
			Body:      fmt.Sprintf("A new %s request is available in your area", request.ServiceType),
			Type:      entity.NotificationTypeNewRequest,
			RelatedID: request.ID,
			Read:      false,
		})
	}

	return notifications
}
