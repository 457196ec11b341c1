package analytics

import (
	"context"
	"time"

	"github.com/optionsbroker/vergleich/internal/platform/id"
)

// Recorder implements Tracker by stamping clicks and enqueuing them on a
// Dispatcher. A nil Recorder or one without a dispatcher is a no-op.
type Recorder struct {
	dispatcher *Dispatcher
	clock      func() time.Time
	newID      func() (string, error)
}

// NewRecorder creates a recorder feeding dispatcher.
func NewRecorder(dispatcher *Dispatcher) *Recorder {
	return &Recorder{dispatcher: dispatcher, clock: time.Now, newID: id.NewID}
}

func (r *Recorder) TrackCTAClick(ctx context.Context, click Click) {
	r.record(ctx, CategoryCTA, click)
}

func (r *Recorder) TrackBrokerClick(ctx context.Context, click Click) {
	r.record(ctx, CategoryBroker, click)
}

func (r *Recorder) TrackOutboundClick(ctx context.Context, click Click) {
	r.record(ctx, CategoryOutbound, click)
}

func (r *Recorder) record(_ context.Context, category Category, click Click) {
	if r == nil || r.dispatcher == nil {
		return
	}
	click.Category = category
	if click.OccurredAt.IsZero() {
		if r.clock == nil {
			click.OccurredAt = time.Now().UTC()
		} else {
			click.OccurredAt = r.clock().UTC()
		}
	}
	if click.ID == "" && r.newID != nil {
		if generated, err := r.newID(); err == nil {
			click.ID = generated
		}
	}
	r.dispatcher.Enqueue(click)
}
