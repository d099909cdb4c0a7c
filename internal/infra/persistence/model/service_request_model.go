package model

import "time"

// ServiceRequestModel is the GORM-specific struct for the 'service_requests' table.
type ServiceRequestModel struct {
	ID               string   `gorm:"type:text;primaryKey"`
	CustomerID       string   `gorm:"type:text;not null;index"`
	ServiceType      string   `gorm:"type:text;not null"`
	Description      string   `gorm:"type:text;not null;default:''"`
	Latitude         *float64 `gorm:"type:double precision"`
	Longitude        *float64 `gorm:"type:double precision"`
	Status           string   `gorm:"type:text;not null;index"`
	AssignedProvider *string  `gorm:"type:text;index"`
	AssignedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRequestModel) TableName() string {
	return "service_requests"
}
