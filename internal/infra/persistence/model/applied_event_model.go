package model

import "time"

// AppliedEventModel is the GORM-specific struct for the 'applied_events' table.
// The primary key is the ledger key, so a redelivered event cannot be recorded twice.
type AppliedEventModel struct {
	Key          string    `gorm:"type:text;primaryKey"`
	Handler      string    `gorm:"type:text;not null"`
	RequestID    string    `gorm:"type:text;not null;index"`
	TargetStatus string    `gorm:"type:text;not null;default:''"`
	AppliedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AppliedEventModel) TableName() string {
	return "applied_events"
}

// All lists every model, in dependency order, for schema creation in tests.
func All() []any {
	return []any{
		&ProviderModel{},
		&ProviderServiceModel{},
		&ServiceRequestModel{},
		&NotificationModel{},
		&AppliedEventModel{},
	}
}
