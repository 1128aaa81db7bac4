// internal/scoring/scoring.go

// Package scoring computes an application's data sensitivity value and maps
// it to a classification tier.
//
// The formula amplifies re-identifiable data: globally-identifying elements
// (name, email) multiply the weight of personal, student, and government
// data, while PCI, medical, and company-confidential data count on their own
// regardless of identifiability.
package scoring

import "github.com/dangerclosesec/redline/internal/model"

// Classification is the scoring result for one application.
type Classification struct {
	DSV            float64                   `json:"dsv"`
	Computed       model.ClassificationLevel `json:"computed_level"`
	Effective      model.ClassificationLevel `json:"effective_level"`
	Overridden     bool                      `json:"is_overridden"`
	OverrideReason string                    `json:"override_reason,omitempty"`
}

// SensitivityValue computes the data sensitivity value (DSV) for a set of
// selected data elements. Order is irrelevant and the empty set scores zero.
// Weights are assumed non-negative; the catalog enforces that at the source.
func SensitivityValue(elements []model.DataElement) float64 {
	var global, personal, company, student, government, pci, medical float64

	for _, e := range elements {
		switch e.Category {
		case model.CategoryGlobal:
			global += e.Weight
		case model.CategoryPersonal:
			personal += e.Weight
		case model.CategoryCompany:
			company += e.Weight
		case model.CategoryStudent:
			student += e.Weight
		case model.CategoryGovernment:
			government += e.Weight
		case model.CategoryPCI:
			pci += e.Weight
		case model.CategoryMedical:
			medical += e.Weight
		}
	}

	return global*(personal+student+government) + pci + medical + company
}

// ClassificationLevel maps a DSV to its tier.
//
//	dsv < 15          DCL-1
//	15 <= dsv < 100   DCL-2
//	100 <= dsv < 150  DCL-3
//	dsv >= 150        DCL-4
func ClassificationLevel(dsv float64) model.ClassificationLevel {
	switch {
	case dsv < 15:
		return model.DCL1
	case dsv < 100:
		return model.DCL2
	case dsv < 150:
		return model.DCL3
	default:
		return model.DCL4
	}
}

// Evaluate scores an application from its loaded data elements. A manual
// override changes the effective tier only; the DSV and computed tier always
// reflect the selected elements.
func Evaluate(app *model.Application) Classification {
	dsv := SensitivityValue(app.DataElements)
	computed := ClassificationLevel(dsv)

	c := Classification{
		DSV:       dsv,
		Computed:  computed,
		Effective: computed,
	}

	if app.Overridden() {
		c.Effective = *app.OverrideLevel
		c.Overridden = true
		c.OverrideReason = app.OverrideReason
	}

	return c
}
