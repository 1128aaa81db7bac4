// internal/lifecycle/status.go
package lifecycle

// Status is the lifecycle state shared by engagements and activities.
type Status string

const (
	StatusPending Status = "pending"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// Valid reports whether s is one of the three defined lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOpen, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
