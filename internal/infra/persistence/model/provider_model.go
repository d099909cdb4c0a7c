package model

import "time"

// ProviderModel is the GORM-specific struct for the 'providers' table.
type ProviderModel struct {
	ID            string   `gorm:"type:text;primaryKey"`
	Name          string   `gorm:"type:text;not null;default:''"`
	CurrentStatus string   `gorm:"type:text;not null;default:'available';index"`
	Latitude      *float64 `gorm:"type:double precision"`
	Longitude     *float64 `gorm:"type:double precision"`
	CompletedJobs int      `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Services []ProviderServiceModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ProviderServiceModel is the GORM-specific struct for the 'provider_services' table.
// Each row is one service tag offered by a provider.
type ProviderServiceModel struct {
	ProviderID  string `gorm:"type:text;primaryKey"`
	ServiceType string `gorm:"type:text;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderServiceModel) TableName() string {
	return "provider_services"
}
