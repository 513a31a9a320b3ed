package ports

import (
	"context"
	"time"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

// BillSource retrieves raw bill records for one search term, across however
// many result pages the implementation chooses to follow.
type BillSource interface {
	Search(ctx context.Context, term string) ([]domain.Bill, error)
}

// SnapshotSink persists the three output tables of a completed run.
type SnapshotSink interface {
	WriteSnapshot(ctx context.Context, snap domain.Snapshot) error
}

// Clock supplies wall-clock time so row timestamps are injectable in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
