package dispatch

import (
	"fmt"

	"mastercraft/internal/domain/entity"
)

const (
	statusUpdateTitle = "Service Request Update"
	reviewPromptTitle = "Leave a Review"
	reviewPromptBody  = "Your service is complete. Please leave a review for your service provider."
)

// TransitionPlan is the complete effect set of one status change.
type TransitionPlan struct {
	Notifications   []*entity.Notification
	ProviderUpdates []entity.ProviderUpdate
}

// IsEmpty reports whether the plan has no effects.
func (p TransitionPlan) IsEmpty() bool {
	return len(p.Notifications) == 0 && len(p.ProviderUpdates) == 0
}

// transitionRule contributes effects to a plan when its guard holds.
type transitionRule func(before, after *entity.ServiceRequest, plan *TransitionPlan)

// transitionRules are evaluated independently against the same snapshots; each
// applicable rule fires regardless of the others.
var transitionRules = []transitionRule{
	notifyCustomerOfStatus,
	promptCustomerForReview,
	markProviderOnJob,
	releaseProviderOnCompletion,
	releaseProviderOnCancellation,
}

// PlanStatusChange computes the effects of moving a request from before to after.
// Equal statuses yield an empty plan.
func PlanStatusChange(before, after *entity.ServiceRequest) TransitionPlan {
	var plan TransitionPlan
	if before == nil || after == nil || before.Status == after.Status {
		return plan
	}

	for _, rule := range transitionRules {
		rule(before, after, &plan)
	}

	return plan
}

func notifyCustomerOfStatus(_, after *entity.ServiceRequest, plan *TransitionPlan) {
	if !after.HasCustomer() {
		return
	}

	plan.Notifications = append(plan.Notifications, &entity.Notification{
		UserID:    after.CustomerID,
		Title:     statusUpdateTitle,
		Body:      fmt.Sprintf("Your service request status has changed to: %s", after.Status),
		Type:      entity.NotificationTypeStatusUpdate,
		RelatedID: after.ID,
	})
}

func promptCustomerForReview(_, after *entity.ServiceRequest, plan *TransitionPlan) {
	if after.Status != entity.RequestStatusCompleted || !after.HasCustomer() || !after.HasProvider() {
		return
	}

	plan.Notifications = append(plan.Notifications, &entity.Notification{
		UserID:    after.CustomerID,
		Title:     reviewPromptTitle,
		Body:      reviewPromptBody,
		Type:      entity.NotificationTypeReviewPrompt,
		RelatedID: after.ID,
	})
}

func markProviderOnJob(_, after *entity.ServiceRequest, plan *TransitionPlan) {
	if after.Status != entity.RequestStatusAssigned || !after.HasProvider() {
		return
	}

	plan.ProviderUpdates = append(plan.ProviderUpdates, entity.ProviderUpdate{
		ProviderID: after.AssignedProvider,
		Status:     entity.ProviderStatusOnJob,
	})
}

func releaseProviderOnCompletion(_, after *entity.ServiceRequest, plan *TransitionPlan) {
	if after.Status != entity.RequestStatusCompleted || !after.HasProvider() {
		return
	}

	plan.ProviderUpdates = append(plan.ProviderUpdates, entity.ProviderUpdate{
		ProviderID:         after.AssignedProvider,
		Status:             entity.ProviderStatusAvailable,
		CompletedJobsDelta: 1,
	})
}

// releaseProviderOnCancellation runs beside markProviderOnJob so both flips of
// one request are ordered by the same event stream.
func releaseProviderOnCancellation(_, after *entity.ServiceRequest, plan *TransitionPlan) {
	if after.Status != entity.RequestStatusCancelled || !after.HasProvider() {
		return
	}

	plan.ProviderUpdates = append(plan.ProviderUpdates, entity.ProviderUpdate{
		ProviderID: after.AssignedProvider,
		Status:     entity.ProviderStatusAvailable,
	})
}
