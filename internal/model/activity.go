// internal/model/activity.go
package model

import (
	"time"

	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/google/uuid"
)

// Activity is a single unit of assessment work inside an engagement. Its
// status changes drive the parent engagement's lifecycle: the first activity
// to open opens the engagement, and closing the last open activity closes it.
type Activity struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EngagementID uuid.UUID        `gorm:"type:uuid;not null;index" json:"engagement_id"`
	Name         string           `gorm:"type:text;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	Status       lifecycle.Status `gorm:"type:text;not null;default:'pending'" json:"status"`
	OpenedAt     *time.Time       `json:"opened_at,omitempty"`
	ClosedAt     *time.Time       `json:"closed_at,omitempty"`
	Duration     *time.Duration   `gorm:"type:bigint" json:"duration,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	Engagement Engagement `gorm:"foreignKey:EngagementID" json:"-"`
}

// lifecycle.Trackable implementation.

func (a *Activity) CurrentStatus() lifecycle.Status { return a.Status }
func (a *Activity) SetStatus(s lifecycle.Status)    { a.Status = s }
func (a *Activity) OpenedStamp() *time.Time         { return a.OpenedAt }
func (a *Activity) SetOpenedStamp(t *time.Time)     { a.OpenedAt = t }
func (a *Activity) ClosedStamp() *time.Time         { return a.ClosedAt }
func (a *Activity) SetClosedStamp(t *time.Time)     { a.ClosedAt = t }
func (a *Activity) SetDuration(d *time.Duration)    { a.Duration = d }

// Status predicates. Pure reads over the loaded snapshot.

func (a *Activity) IsPending() bool { return a.Status == lifecycle.StatusPending }
func (a *Activity) IsOpen() bool    { return a.Status == lifecycle.StatusOpen }
func (a *Activity) IsClosed() bool  { return a.Status == lifecycle.StatusClosed }

// ReadyForWork and PastDue delegate to the parent engagement's schedule;
// activities have no dates of their own. Both require the Engagement
// association to be loaded.

func (a *Activity) ReadyForWork(today time.Time) bool {
	return a.IsPending() && !dateOnly(today).Before(dateOnly(a.Engagement.StartDate))
}

func (a *Activity) PastDue(today time.Time) bool {
	return (a.IsPending() || a.IsOpen()) && dateOnly(today).After(dateOnly(a.Engagement.EndDate))
}
