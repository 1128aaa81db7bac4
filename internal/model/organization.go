// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization owns the applications assessed by the platform.
type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Applications []Application `gorm:"foreignKey:OrganizationID" json:"applications,omitempty"`
}
