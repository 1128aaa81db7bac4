// internal/lifecycle/lifecycle_test.go
package lifecycle_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracked is a minimal Trackable for exercising the state machine without
// dragging in a persisted model.
type tracked struct {
	status   lifecycle.Status
	openedAt *time.Time
	closedAt *time.Time
	duration *time.Duration
}

func (t *tracked) CurrentStatus() lifecycle.Status { return t.status }
func (t *tracked) SetStatus(s lifecycle.Status)    { t.status = s }
func (t *tracked) OpenedStamp() *time.Time         { return t.openedAt }
func (t *tracked) SetOpenedStamp(ts *time.Time)    { t.openedAt = ts }
func (t *tracked) ClosedStamp() *time.Time         { return t.closedAt }
func (t *tracked) SetClosedStamp(ts *time.Time)    { t.closedAt = ts }
func (t *tracked) SetDuration(d *time.Duration)    { t.duration = d }

func TestApplyOpenStampsFirstOpen(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tr := &tracked{status: lifecycle.StatusPending}

	changed, err := lifecycle.Apply(tr, lifecycle.StatusOpen, now)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, lifecycle.StatusOpen, tr.status)
	require.NotNil(t, tr.openedAt)
	assert.Equal(t, now, *tr.openedAt)
	assert.Nil(t, tr.closedAt)
	assert.Nil(t, tr.duration)
}

func TestApplySameStatusIsNoOp(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	opened := now.Add(-time.Hour)
	tr := &tracked{status: lifecycle.StatusOpen, openedAt: &opened}

	changed, err := lifecycle.Apply(tr, lifecycle.StatusOpen, now)
	require.NoError(t, err)
	assert.False(t, changed)

	// The original open stamp survives untouched.
	require.NotNil(t, tr.openedAt)
	assert.Equal(t, opened, *tr.openedAt)
}

func TestApplyInvalidStatus(t *testing.T) {
	tr := &tracked{status: lifecycle.StatusPending}

	changed, err := lifecycle.Apply(tr, lifecycle.Status("cancelled"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.False(t, changed)
	assert.Equal(t, lifecycle.StatusPending, tr.status)
}

func TestApplyCloseComputesDuration(t *testing.T) {
	opened := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closed := opened.Add(3 * time.Hour)
	tr := &tracked{status: lifecycle.StatusOpen, openedAt: &opened}

	changed, err := lifecycle.Apply(tr, lifecycle.StatusClosed, closed)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, lifecycle.StatusClosed, tr.status)
	require.NotNil(t, tr.closedAt)
	assert.Equal(t, closed, *tr.closedAt)
	require.NotNil(t, tr.duration)
	assert.Equal(t, 3*time.Hour, *tr.duration)
}

func TestApplyCloseFromPendingBackfillsOpen(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tr := &tracked{status: lifecycle.StatusPending}

	changed, err := lifecycle.Apply(tr, lifecycle.StatusClosed, now)
	require.NoError(t, err)
	assert.True(t, changed)

	require.NotNil(t, tr.openedAt)
	require.NotNil(t, tr.closedAt)
	assert.Equal(t, *tr.openedAt, *tr.closedAt)
	require.NotNil(t, tr.duration)
	assert.Equal(t, time.Duration(0), *tr.duration)
}

func TestApplyPendingClearsStamps(t *testing.T) {
	opened := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closed := opened.Add(time.Hour)
	dur := time.Hour
	tr := &tracked{
		status:   lifecycle.StatusClosed,
		openedAt: &opened,
		closedAt: &closed,
		duration: &dur,
	}

	changed, err := lifecycle.Apply(tr, lifecycle.StatusPending, closed.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, lifecycle.StatusPending, tr.status)
	assert.Nil(t, tr.openedAt)
	assert.Nil(t, tr.closedAt)
	assert.Nil(t, tr.duration)
}

func TestApplyReopenKeepsOriginalOpenStamp(t *testing.T) {
	opened := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closed := opened.Add(2 * time.Hour)
	dur := 2 * time.Hour
	tr := &tracked{
		status:   lifecycle.StatusClosed,
		openedAt: &opened,
		closedAt: &closed,
		duration: &dur,
	}

	later := closed.Add(time.Hour)
	changed, err := lifecycle.Apply(tr, lifecycle.StatusOpen, later)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, lifecycle.StatusOpen, tr.status)
	require.NotNil(t, tr.openedAt)
	assert.Equal(t, opened, *tr.openedAt, "reopening must keep the first open stamp")
	assert.Nil(t, tr.closedAt)
	assert.Nil(t, tr.duration)
}

func TestApplyReopenThenCloseAgainRecomputesDuration(t *testing.T) {
	opened := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tr := &tracked{status: lifecycle.StatusPending}

	_, err := lifecycle.Apply(tr, lifecycle.StatusOpen, opened)
	require.NoError(t, err)
	_, err = lifecycle.Apply(tr, lifecycle.StatusClosed, opened.Add(time.Hour))
	require.NoError(t, err)
	_, err = lifecycle.Apply(tr, lifecycle.StatusOpen, opened.Add(2*time.Hour))
	require.NoError(t, err)
	_, err = lifecycle.Apply(tr, lifecycle.StatusClosed, opened.Add(5*time.Hour))
	require.NoError(t, err)

	// Duration always measures from the first open to the latest close.
	require.NotNil(t, tr.duration)
	assert.Equal(t, 5*time.Hour, *tr.duration)
}

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status lifecycle.Status
		want   bool
	}{
		{lifecycle.StatusPending, true},
		{lifecycle.StatusOpen, true},
		{lifecycle.StatusClosed, true},
		{lifecycle.Status(""), false},
		{lifecycle.Status("archived"), false},
		{lifecycle.Status("OPEN"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}
