// internal/lifecycle/lifecycle.go
package lifecycle

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/redline/internal/domain"
)

// Trackable is implemented by any entity whose lifecycle the state machine
// governs. Engagements and activities both satisfy it, so the transition
// rules live here exactly once.
type Trackable interface {
	CurrentStatus() Status
	SetStatus(Status)
	OpenedStamp() *time.Time
	SetOpenedStamp(*time.Time)
	ClosedStamp() *time.Time
	SetClosedStamp(*time.Time)
	SetDuration(*time.Duration)
}

// Apply transitions t to next, stamping and clearing timestamps and
// recomputing the elapsed duration. It mutates t in memory only; persisting
// the result is the caller's concern. The returned bool reports whether
// anything changed; requesting the current status is a no-op.
//
// Rules:
//   - pending clears both stamps, discarding any elapsed-time history
//   - open stamps the first open only; reopening keeps the original stamp
//   - closed back-fills the open stamp when closing straight from pending,
//     so the duration is zero rather than undefined
func Apply(t Trackable, next Status, now time.Time) (bool, error) {
	if !next.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, next)
	}

	if t.CurrentStatus() == next {
		return false, nil
	}

	switch next {
	case StatusPending:
		t.SetOpenedStamp(nil)
		t.SetClosedStamp(nil)

	case StatusOpen:
		if t.OpenedStamp() == nil {
			opened := now
			t.SetOpenedStamp(&opened)
		}
		t.SetClosedStamp(nil)

	case StatusClosed:
		if t.OpenedStamp() == nil {
			opened := now
			t.SetOpenedStamp(&opened)
		}
		closed := now
		t.SetClosedStamp(&closed)
	}

	t.SetStatus(next)
	t.SetDuration(elapsed(t.OpenedStamp(), t.ClosedStamp()))

	return true, nil
}

// elapsed derives the duration between the two stamps. Nil unless both are
// set; never negative within a single transition because the close stamp is
// taken at or after the matching open stamp.
func elapsed(opened, closed *time.Time) *time.Duration {
	if opened == nil || closed == nil {
		return nil
	}
	d := closed.Sub(*opened)
	return &d
}
