// internal/service/activity_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/redline/internal/audit"
	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/dangerclosesec/redline/internal/mocks"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/dangerclosesec/redline/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

// recordedChange captures one audit call for assertion.
type recordedChange struct {
	entityType string
	entityID   uuid.UUID
	from, to   lifecycle.Status
	cascaded   bool
	at         time.Time
}

// captureRecorder is an audit.Recorder that remembers every call.
type captureRecorder struct {
	changes []recordedChange
}

var _ audit.Recorder = (*captureRecorder)(nil)

func (r *captureRecorder) RecordStatusChange(_ context.Context, entityType string, entityID uuid.UUID, from, to lifecycle.Status, cascaded bool, at time.Time) {
	r.changes = append(r.changes, recordedChange{entityType, entityID, from, to, cascaded, at})
}

// activityFixture wires an ActivityService against mocked repositories. The
// InTransaction mock hands the same mocks back to the callback, so each test
// scripts the full transactional sequence.
type activityFixture struct {
	activities  *mocks.MockActivityRepositoryIface
	engagements *mocks.MockEngagementRepositoryIface
	recorder    *captureRecorder
	svc         *service.ActivityService
}

func newActivityFixture(t *testing.T) *activityFixture {
	ctrl := gomock.NewController(t)

	f := &activityFixture{
		activities:  mocks.NewMockActivityRepositoryIface(ctrl),
		engagements: mocks.NewMockEngagementRepositoryIface(ctrl),
		recorder:    &captureRecorder{},
	}

	clock := lifecycle.FixedClock{At: testNow}
	engagementSvc := service.NewEngagementService(f.engagements, nil, clock, f.recorder, nil, nil)
	f.svc = service.NewActivityService(f.activities, f.engagements, engagementSvc, clock, f.recorder)

	return f
}

func (f *activityFixture) expectTransaction() {
	f.activities.EXPECT().
		InTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.ActivityRepositoryIface, repository.EngagementRepositoryIface) error) error {
			return fn(f.activities, f.engagements)
		})
}

func pendingActivity(engagementID uuid.UUID) *model.Activity {
	return &model.Activity{
		ID:           uuid.New(),
		EngagementID: engagementID,
		Name:         "external port scan",
		Status:       lifecycle.StatusPending,
	}
}

func TestActivitySetStatusOpensPendingEngagement(t *testing.T) {
	f := newActivityFixture(t)

	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusPending}
	activity := pendingActivity(engagement.ID)

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	f.engagements.EXPECT().Update(gomock.Any(), engagement).Return(nil)

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusOpen)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusOpen, got.Status)
	require.NotNil(t, got.OpenedAt)
	assert.Equal(t, testNow, *got.OpenedAt)

	assert.Equal(t, lifecycle.StatusOpen, engagement.Status)
	require.NotNil(t, engagement.OpenedAt)
	assert.Equal(t, testNow, *engagement.OpenedAt)

	require.Len(t, f.recorder.changes, 2)
	assert.Equal(t, "activity", f.recorder.changes[0].entityType)
	assert.False(t, f.recorder.changes[0].cascaded)
	assert.Equal(t, "engagement", f.recorder.changes[1].entityType)
	assert.True(t, f.recorder.changes[1].cascaded)
}

func TestActivitySetStatusOpenUnderOpenEngagementLeavesStampAlone(t *testing.T) {
	f := newActivityFixture(t)

	openedEarlier := testNow.Add(-48 * time.Hour)
	engagement := &model.Engagement{
		ID:       uuid.New(),
		Status:   lifecycle.StatusOpen,
		OpenedAt: &openedEarlier,
	}
	activity := pendingActivity(engagement.ID)

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	// No engagement update: the parent is already open.

	_, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusOpen)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusOpen, engagement.Status)
	assert.Equal(t, openedEarlier, *engagement.OpenedAt)

	require.Len(t, f.recorder.changes, 1)
	assert.Equal(t, "activity", f.recorder.changes[0].entityType)
}

func TestActivitySetStatusClosingSoleActivityClosesEngagement(t *testing.T) {
	f := newActivityFixture(t)

	openedAt := testNow.Add(-2 * time.Hour)
	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusOpen, OpenedAt: &openedAt}
	activity := pendingActivity(engagement.ID)
	activity.Status = lifecycle.StatusOpen
	activity.OpenedAt = &openedAt

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	f.activities.EXPECT().FindByEngagement(gomock.Any(), engagement.ID).Return([]*model.Activity{activity}, nil)
	f.engagements.EXPECT().Update(gomock.Any(), engagement).Return(nil)

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusClosed)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusClosed, got.Status)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 2*time.Hour, *got.Duration)

	assert.Equal(t, lifecycle.StatusClosed, engagement.Status)
	require.NotNil(t, engagement.ClosedAt)
	assert.Equal(t, testNow, *engagement.ClosedAt)
	require.NotNil(t, engagement.Duration)
	assert.Equal(t, 2*time.Hour, *engagement.Duration)
}

func TestActivitySetStatusCloseWithOpenSiblingLeavesEngagementOpen(t *testing.T) {
	f := newActivityFixture(t)

	openedAt := testNow.Add(-time.Hour)
	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusOpen, OpenedAt: &openedAt}
	activity := pendingActivity(engagement.ID)
	activity.Status = lifecycle.StatusOpen
	activity.OpenedAt = &openedAt

	sibling := pendingActivity(engagement.ID)
	sibling.Status = lifecycle.StatusOpen

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	f.activities.EXPECT().FindByEngagement(gomock.Any(), engagement.ID).Return([]*model.Activity{activity, sibling}, nil)
	// No engagement update: a sibling is still open.

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusClosed)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusClosed, got.Status)
	assert.Equal(t, lifecycle.StatusOpen, engagement.Status)

	require.Len(t, f.recorder.changes, 1)
	assert.Equal(t, "activity", f.recorder.changes[0].entityType)
}

func TestActivitySetStatusClosingLastSiblingClosesEngagement(t *testing.T) {
	f := newActivityFixture(t)

	openedAt := testNow.Add(-3 * time.Hour)
	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusOpen, OpenedAt: &openedAt}

	closedAt := testNow.Add(-time.Hour)
	sibling := pendingActivity(engagement.ID)
	sibling.Status = lifecycle.StatusClosed
	sibling.OpenedAt = &openedAt
	sibling.ClosedAt = &closedAt

	activity := pendingActivity(engagement.ID)
	activity.Status = lifecycle.StatusOpen
	activity.OpenedAt = &openedAt

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	f.activities.EXPECT().FindByEngagement(gomock.Any(), engagement.ID).Return([]*model.Activity{sibling, activity}, nil)
	f.engagements.EXPECT().Update(gomock.Any(), engagement).Return(nil)

	_, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusClosed)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusClosed, engagement.Status)

	require.Len(t, f.recorder.changes, 2)
	assert.Equal(t, "engagement", f.recorder.changes[1].entityType)
	assert.True(t, f.recorder.changes[1].cascaded)
}

func TestActivitySetStatusInvalidFailsFast(t *testing.T) {
	f := newActivityFixture(t)

	// No repository expectations: validation rejects the request before any
	// transaction starts.
	_, err := f.svc.SetStatus(context.Background(), uuid.New(), lifecycle.Status("blocked"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Empty(t, f.recorder.changes)
}

func TestActivitySetStatusIdempotentNoOp(t *testing.T) {
	f := newActivityFixture(t)

	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusPending}
	activity := pendingActivity(engagement.ID)

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	// No updates, no cascade: the activity is already pending.

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusPending, got.Status)
	assert.Empty(t, f.recorder.changes)
}

func TestActivitySetStatusMissingEngagementAbortsTransaction(t *testing.T) {
	f := newActivityFixture(t)

	engagementID := uuid.New()
	activity := pendingActivity(engagementID)

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagementID).Return(nil, domain.ErrEngagementNotFound)

	_, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusOpen)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEngagementNotFound)
	assert.Empty(t, f.recorder.changes)
}

func TestActivitySetStatusRetriesSerializationConflict(t *testing.T) {
	f := newActivityFixture(t)

	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusPending}
	activity := pendingActivity(engagement.ID)

	// First attempt loses a serialization race; the retry succeeds.
	first := f.activities.EXPECT().
		InTransaction(gomock.Any(), gomock.Any()).
		Return(domain.ErrConcurrentModification)
	f.activities.EXPECT().
		InTransaction(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(ctx context.Context, fn func(repository.ActivityRepositoryIface, repository.EngagementRepositoryIface) error) error {
			return fn(f.activities, f.engagements)
		})

	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	f.engagements.EXPECT().Update(gomock.Any(), engagement).Return(nil)

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusOpen)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusOpen, got.Status)
}

func TestActivitySetStatusBackToPendingNeverPropagates(t *testing.T) {
	f := newActivityFixture(t)

	openedAt := testNow.Add(-time.Hour)
	engagement := &model.Engagement{ID: uuid.New(), Status: lifecycle.StatusOpen, OpenedAt: &openedAt}
	activity := pendingActivity(engagement.ID)
	activity.Status = lifecycle.StatusOpen
	activity.OpenedAt = &openedAt

	f.expectTransaction()
	f.activities.EXPECT().FindByID(gomock.Any(), activity.ID).Return(activity, nil)
	f.activities.EXPECT().Update(gomock.Any(), activity).Return(nil)
	f.engagements.EXPECT().FindByID(gomock.Any(), engagement.ID).Return(engagement, nil)
	// No engagement update: pending transitions never bubble up.

	got, err := f.svc.SetStatus(context.Background(), activity.ID, lifecycle.StatusPending)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusPending, got.Status)
	assert.Nil(t, got.OpenedAt)
	assert.Equal(t, lifecycle.StatusOpen, engagement.Status)
}

func TestActivityCreateRequiresEngagement(t *testing.T) {
	f := newActivityFixture(t)

	engagementID := uuid.New()
	f.engagements.EXPECT().FindByID(gomock.Any(), engagementID).Return(nil, domain.ErrEngagementNotFound)

	_, err := f.svc.Create(context.Background(), engagementID, service.CreateActivityInput{Name: "code review"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEngagementNotFound)
}

func TestActivityCreateValidatesInput(t *testing.T) {
	f := newActivityFixture(t)

	_, err := f.svc.Create(context.Background(), uuid.New(), service.CreateActivityInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
