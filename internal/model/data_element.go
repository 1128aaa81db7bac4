// internal/model/data_element.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DataCategory classifies a catalog data element. The set is fixed; the
// scoring formula keys off these values, so a new category is a code change,
// not a data change.
type DataCategory string

const (
	CategoryGlobal     DataCategory = "global"
	CategoryPersonal   DataCategory = "personal"
	CategoryCompany    DataCategory = "company"
	CategoryStudent    DataCategory = "student"
	CategoryGovernment DataCategory = "government"
	CategoryPCI        DataCategory = "pci"
	CategoryMedical    DataCategory = "medical"
)

// Valid reports whether c is one of the seven defined categories.
func (c DataCategory) Valid() bool {
	switch c {
	case CategoryGlobal, CategoryPersonal, CategoryCompany, CategoryStudent,
		CategoryGovernment, CategoryPCI, CategoryMedical:
		return true
	}
	return false
}

// DataElement is an immutable catalog entry describing one kind of data an
// application may handle, with the weight it contributes to the sensitivity
// score. Applications reference a subset of the catalog.
type DataElement struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string       `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Category    DataCategory `gorm:"type:text;not null" json:"category"`
	Weight      float64      `gorm:"type:numeric;not null" json:"weight"`
	Description string       `gorm:"type:text" json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}
