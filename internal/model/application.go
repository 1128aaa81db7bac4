// internal/model/application.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClassificationLevel is the four-tier data classification (DCL 1 through
// DCL 4) mapped from an application's sensitivity score, or asserted manually
// through an override.
type ClassificationLevel int

const (
	DCL1 ClassificationLevel = iota + 1
	DCL2
	DCL3
	DCL4
)

// Valid reports whether l is one of the four defined tiers.
func (l ClassificationLevel) Valid() bool {
	return l >= DCL1 && l <= DCL4
}

func (l ClassificationLevel) String() string {
	return fmt.Sprintf("DCL-%d", int(l))
}

// Application is a piece of software belonging to one organization. It
// carries the selected data elements that drive its sensitivity
// classification and owns the engagements run against it.
type Application struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	URL            string    `gorm:"type:text" json:"url"`

	// OverrideLevel, when set, supersedes the computed classification for
	// reporting. OverrideReason must be non-empty whenever it is set.
	OverrideLevel  *ClassificationLevel `gorm:"type:int" json:"override_level,omitempty"`
	OverrideReason string               `gorm:"type:text" json:"override_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organization Organization  `gorm:"foreignKey:OrganizationID" json:"-"`
	DataElements []DataElement `gorm:"many2many:application_data_elements" json:"data_elements,omitempty"`
	Engagements  []Engagement  `gorm:"foreignKey:ApplicationID" json:"engagements,omitempty"`
}

// Overridden reports whether a manual classification is in effect.
func (a *Application) Overridden() bool {
	return a.OverrideLevel != nil
}
