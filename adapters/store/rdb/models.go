package rdb

import "time"

// ProviderRecord is the RDB persistence model for domain Provider.
// Table name: providers
type ProviderRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Name      string    `gorm:"type:text;not null"`
	Driver    string    `gorm:"type:text;not null"`
	Settings  string    `gorm:"type:text"` // JSON encoded map[string]string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProviderRecord) TableName() string { return "providers" }

// PlanRecord persistence model
type PlanRecord struct {
	ID            string    `gorm:"primaryKey;type:text;not null"`
	Name          string    `gorm:"type:text;not null"`
	ProviderID    string    `gorm:"type:text;not null"` // references Provider
	ResourceGroup string    `gorm:"type:text"`
	Location      string    `gorm:"type:text"`
	Steps         string    `gorm:"type:text"` // JSON encoded []model.Step
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (PlanRecord) TableName() string { return "plans" }

// RunRecord persistence model
type RunRecord struct {
	ID            string    `gorm:"primaryKey;type:text;not null"`
	PlanID        string    `gorm:"type:text;not null"` // references Plan
	PlanName      string    `gorm:"type:text"`
	ResourceGroup string    `gorm:"type:text"`
	Status        string    `gorm:"type:text;not null"`
	Steps         string    `gorm:"type:text"` // JSON encoded []model.StepResult
	StartedAt     time.Time `gorm:"not null"`
	FinishedAt    time.Time `gorm:"not null"`
}

func (RunRecord) TableName() string { return "runs" }
