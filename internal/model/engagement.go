// internal/model/engagement.go
package model

import (
	"time"

	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/google/uuid"
)

// Engagement is a time-boxed assessment window against one application. Its
// status normally follows its activities through the lifecycle cascade, but
// direct edits are allowed and never propagate downward.
type Engagement struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID        `gorm:"type:uuid;not null;index" json:"application_id"`
	Name          string           `gorm:"type:text;not null" json:"name"`
	Status        lifecycle.Status `gorm:"type:text;not null;default:'pending'" json:"status"`
	StartDate     time.Time        `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time        `gorm:"type:date;not null" json:"end_date"`
	OpenedAt      *time.Time       `json:"opened_at,omitempty"`
	ClosedAt      *time.Time       `json:"closed_at,omitempty"`
	Duration      *time.Duration   `gorm:"type:bigint" json:"duration,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
	Activities  []Activity  `gorm:"foreignKey:EngagementID" json:"activities,omitempty"`
}

// lifecycle.Trackable implementation.

func (e *Engagement) CurrentStatus() lifecycle.Status     { return e.Status }
func (e *Engagement) SetStatus(s lifecycle.Status)        { e.Status = s }
func (e *Engagement) OpenedStamp() *time.Time             { return e.OpenedAt }
func (e *Engagement) SetOpenedStamp(t *time.Time)         { e.OpenedAt = t }
func (e *Engagement) ClosedStamp() *time.Time             { return e.ClosedAt }
func (e *Engagement) SetClosedStamp(t *time.Time)         { e.ClosedAt = t }
func (e *Engagement) SetDuration(d *time.Duration)        { e.Duration = d }

// Status predicates. Pure reads over the loaded snapshot.

func (e *Engagement) IsPending() bool { return e.Status == lifecycle.StatusPending }
func (e *Engagement) IsOpen() bool    { return e.Status == lifecycle.StatusOpen }
func (e *Engagement) IsClosed() bool  { return e.Status == lifecycle.StatusClosed }

// ReadyForWork reports whether the engagement is still pending and its
// scheduled window has started.
func (e *Engagement) ReadyForWork(today time.Time) bool {
	return e.IsPending() && !dateOnly(today).Before(dateOnly(e.StartDate))
}

// PastDue reports whether the engagement is unfinished and its scheduled
// window has ended.
func (e *Engagement) PastDue(today time.Time) bool {
	return (e.IsPending() || e.IsOpen()) && dateOnly(today).After(dateOnly(e.EndDate))
}

// dateOnly truncates a timestamp to its UTC calendar date. Schedule checks
// compare dates, not instants.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
