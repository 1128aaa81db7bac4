// internal/model/engagement_test.go
package model_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEngagementReadyForWork(t *testing.T) {
	e := &model.Engagement{
		Status:    lifecycle.StatusPending,
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 30),
	}

	assert.False(t, e.ReadyForWork(date(2025, 5, 31)), "before the window")
	assert.True(t, e.ReadyForWork(date(2025, 6, 1)), "window start is inclusive")
	assert.True(t, e.ReadyForWork(date(2025, 6, 15)))

	// Only pending engagements are waiting to start.
	e.Status = lifecycle.StatusOpen
	assert.False(t, e.ReadyForWork(date(2025, 6, 15)))
	e.Status = lifecycle.StatusClosed
	assert.False(t, e.ReadyForWork(date(2025, 6, 15)))
}

func TestEngagementReadyForWorkComparesDatesNotInstants(t *testing.T) {
	e := &model.Engagement{
		Status:    lifecycle.StatusPending,
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 30),
	}

	earlyMorning := time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC)
	assert.True(t, e.ReadyForWork(earlyMorning))
}

func TestEngagementPastDue(t *testing.T) {
	e := &model.Engagement{
		Status:    lifecycle.StatusPending,
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 30),
	}

	assert.False(t, e.PastDue(date(2025, 6, 30)), "window end is inclusive")
	assert.True(t, e.PastDue(date(2025, 7, 1)))

	e.Status = lifecycle.StatusOpen
	assert.True(t, e.PastDue(date(2025, 7, 1)))

	// Closed work is finished regardless of schedule.
	e.Status = lifecycle.StatusClosed
	assert.False(t, e.PastDue(date(2025, 7, 1)))
}

func TestActivityScheduleDelegatesToEngagement(t *testing.T) {
	a := &model.Activity{
		Status: lifecycle.StatusPending,
		Engagement: model.Engagement{
			StartDate: date(2025, 6, 1),
			EndDate:   date(2025, 6, 30),
		},
	}

	assert.False(t, a.ReadyForWork(date(2025, 5, 20)))
	assert.True(t, a.ReadyForWork(date(2025, 6, 2)))
	assert.True(t, a.PastDue(date(2025, 7, 1)))

	a.Status = lifecycle.StatusClosed
	assert.False(t, a.ReadyForWork(date(2025, 6, 2)))
	assert.False(t, a.PastDue(date(2025, 7, 1)))
}

func TestApplicationOverridden(t *testing.T) {
	app := &model.Application{}
	assert.False(t, app.Overridden())

	level := model.DCL3
	app.OverrideLevel = &level
	assert.True(t, app.Overridden())
}

func TestClassificationLevelString(t *testing.T) {
	assert.Equal(t, "DCL-1", model.DCL1.String())
	assert.Equal(t, "DCL-4", model.DCL4.String())
}

func TestClassificationLevelValid(t *testing.T) {
	assert.True(t, model.DCL1.Valid())
	assert.True(t, model.DCL4.Valid())
	assert.False(t, model.ClassificationLevel(0).Valid())
	assert.False(t, model.ClassificationLevel(5).Valid())
}
