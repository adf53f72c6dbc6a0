package models

import (
	"time"

	"github.com/kparekh77/api-project-template/internal/domain/resources"
)

// ResourceModel is the GORM database model for resources (infrastructure concern)
type ResourceModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Description     *string   `gorm:"type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	DateTimeUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ResourceModel) TableName() string {
	return "resources"
}

// ToDomain converts GORM model to domain entity
func (m *ResourceModel) ToDomain() *resources.Resource {
	return &resources.Resource{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ResourceModel) FromDomain(r *resources.Resource) {
	m.ID = r.ID
	m.Name = r.Name
	m.Description = r.Description
	m.DateTimeCreated = r.DateTimeCreated
	m.DateTimeUpdated = r.DateTimeUpdated
}
