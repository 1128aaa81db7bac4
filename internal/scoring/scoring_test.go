// internal/scoring/scoring_test.go
package scoring_test

import (
	"testing"

	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func element(name string, category model.DataCategory, weight float64) model.DataElement {
	return model.DataElement{Name: name, Category: category, Weight: weight}
}

func TestSensitivityValue(t *testing.T) {
	tests := []struct {
		name     string
		elements []model.DataElement
		want     float64
	}{
		{
			name:     "empty selection scores zero",
			elements: nil,
			want:     0,
		},
		{
			name: "personal data alone scores zero without a global identifier",
			elements: []model.DataElement{
				element("First Name", model.CategoryPersonal, 2),
				element("Gender", model.CategoryPersonal, 3),
			},
			want: 0,
		},
		{
			name: "global identifier multiplies personal data",
			elements: []model.DataElement{
				element("First Name", model.CategoryPersonal, 2),
				element("Gender", model.CategoryPersonal, 3),
				element("Last Name", model.CategoryGlobal, 10),
			},
			want: 50,
		},
		{
			name: "heavy personal data still scores zero unlinked",
			elements: []model.DataElement{
				element("Age", model.CategoryPersonal, 15),
				element("Education History", model.CategoryPersonal, 100),
			},
			want: 0,
		},
		{
			name: "global identifier alone scores zero",
			elements: []model.DataElement{
				element("Last Name", model.CategoryGlobal, 10),
			},
			want: 0,
		},
		{
			name: "pci counts without identifiability",
			elements: []model.DataElement{
				element("Primary Account Number", model.CategoryPCI, 120),
			},
			want: 120,
		},
		{
			name: "medical and company are additive",
			elements: []model.DataElement{
				element("Diagnosis Codes", model.CategoryMedical, 120),
				element("Source Code", model.CategoryCompany, 50),
			},
			want: 170,
		},
		{
			name: "student and government multiply like personal",
			elements: []model.DataElement{
				element("Last Name", model.CategoryGlobal, 10),
				element("Student ID", model.CategoryStudent, 40),
				element("Social Security Number", model.CategoryGovernment, 100),
			},
			want: 1400,
		},
		{
			name: "full mix",
			elements: []model.DataElement{
				element("Last Name", model.CategoryGlobal, 10),
				element("First Name", model.CategoryPersonal, 2),
				element("Primary Account Number", model.CategoryPCI, 120),
				element("Diagnosis Codes", model.CategoryMedical, 120),
				element("Source Code", model.CategoryCompany, 50),
			},
			// 10*2 + 120 + 120 + 50
			want: 310,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.SensitivityValue(tt.elements))
		})
	}
}

func TestClassificationLevelThresholds(t *testing.T) {
	tests := []struct {
		dsv  float64
		want model.ClassificationLevel
	}{
		{0, model.DCL1},
		{14.9, model.DCL1},
		{15, model.DCL2},
		{50, model.DCL2},
		{99.9, model.DCL2},
		{100, model.DCL3},
		{149.9, model.DCL3},
		{150, model.DCL4},
		{1400, model.DCL4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scoring.ClassificationLevel(tt.dsv), "dsv=%v", tt.dsv)
	}
}

func TestEvaluate(t *testing.T) {
	app := &model.Application{
		Name: "billing",
		DataElements: []model.DataElement{
			element("Last Name", model.CategoryGlobal, 10),
			element("First Name", model.CategoryPersonal, 2),
			element("Gender", model.CategoryPersonal, 3),
		},
	}

	c := scoring.Evaluate(app)
	assert.Equal(t, 50.0, c.DSV)
	assert.Equal(t, model.DCL2, c.Computed)
	assert.Equal(t, model.DCL2, c.Effective)
	assert.False(t, c.Overridden)
	assert.Empty(t, c.OverrideReason)
}

func TestEvaluateWithOverride(t *testing.T) {
	override := model.DCL4
	app := &model.Application{
		Name:           "billing",
		OverrideLevel:  &override,
		OverrideReason: "processes card data downstream",
		DataElements: []model.DataElement{
			element("Last Name", model.CategoryGlobal, 10),
			element("First Name", model.CategoryPersonal, 2),
		},
	}

	c := scoring.Evaluate(app)

	// Override changes the effective tier only. DSV and computed tier still
	// reflect the selected elements.
	assert.Equal(t, 20.0, c.DSV)
	assert.Equal(t, model.DCL2, c.Computed)
	assert.Equal(t, model.DCL4, c.Effective)
	assert.True(t, c.Overridden)
	assert.Equal(t, "processes card data downstream", c.OverrideReason)
}
