// internal/audit/recorder.go
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/google/uuid"
)

// Recorder receives lifecycle status changes after they commit. Recording is
// fire-and-forget: implementations must not fail the triggering operation.
type Recorder interface {
	// RecordStatusChange notes one entity's transition. Cascaded reports
	// whether the change was propagated from a child rather than requested
	// directly.
	RecordStatusChange(
		ctx context.Context,
		entityType string,
		entityID uuid.UUID,
		from, to lifecycle.Status,
		cascaded bool,
		at time.Time,
	)
}

// SlogRecorder writes status changes to the structured log.
type SlogRecorder struct {
	log *slog.Logger
}

func NewSlogRecorder(log *slog.Logger) *SlogRecorder {
	return &SlogRecorder{log: log}
}

func (r *SlogRecorder) RecordStatusChange(
	ctx context.Context,
	entityType string,
	entityID uuid.UUID,
	from, to lifecycle.Status,
	cascaded bool,
	at time.Time,
) {
	r.log.InfoContext(ctx, "status changed",
		"entity_type", entityType,
		"entity_id", entityID.String(),
		"from", from.String(),
		"to", to.String(),
		"cascaded", cascaded,
		"at", at.Format(time.RFC3339),
	)
}
