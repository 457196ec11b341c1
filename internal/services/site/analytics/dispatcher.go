package analytics

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/optionsbroker/vergleich/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultQueueSize bounds the number of clicks waiting for delivery.
	DefaultQueueSize = 256

	tracerName = "github.com/optionsbroker/vergleich/internal/services/site/analytics"
)

// Sink persists or forwards dispatched clicks.
type Sink interface {
	Name() string
	Record(ctx context.Context, click Click) error
}

// Stats is a snapshot of dispatcher counters.
type Stats struct {
	Enqueued  uint64
	Delivered uint64
	Dropped   uint64
	Failed    uint64
}

// Dispatcher delivers enqueued clicks to sinks on a single worker.
type Dispatcher struct {
	queue        chan Click
	sinks        []Sink
	tracer       trace.Tracer
	logger       *log.Logger
	flushTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	enqueued  atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for sink failures.
func WithLogger(logger *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithTracer overrides the tracer used for per-click spans.
func WithTracer(tracer trace.Tracer) DispatcherOption {
	return func(d *Dispatcher) {
		if tracer != nil {
			d.tracer = tracer
		}
	}
}

// WithFlushTimeout bounds how long Run keeps draining after cancellation.
func WithFlushTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.flushTimeout = timeout
		}
	}
}

// NewDispatcher builds a dispatcher with a queue of queueSize clicks.
func NewDispatcher(queueSize int, sinks []Sink, opts ...DispatcherOption) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	filtered := make([]Sink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			filtered = append(filtered, sink)
		}
	}
	d := &Dispatcher{
		queue:        make(chan Click, queueSize),
		sinks:        filtered,
		tracer:       otel.Tracer(tracerName),
		logger:       log.Default(),
		flushTimeout: timeouts.TrackingFlush,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Enqueue hands click to the worker without blocking. It reports false and
// counts a drop when the queue is full or the dispatcher has stopped.
func (d *Dispatcher) Enqueue(click Click) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.dropped.Add(1)
		return false
	}
	select {
	case d.queue <- click:
		d.enqueued.Add(1)
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// Run delivers clicks until ctx is cancelled, then flushes what is queued.
func (d *Dispatcher) Run(ctx context.Context) error {
	if d == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			d.flush(ctx)
			return nil
		case click := <-d.queue:
			d.deliver(ctx, click)
		}
	}
}

// Stats returns the current counters.
func (d *Dispatcher) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	return Stats{
		Enqueued:  d.enqueued.Load(),
		Delivered: d.delivered.Load(),
		Dropped:   d.dropped.Load(),
		Failed:    d.failed.Load(),
	}
}

func (d *Dispatcher) flush(parent context.Context) {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), d.flushTimeout)
	defer cancel()
	for {
		select {
		case click := <-d.queue:
			if ctx.Err() != nil {
				d.dropped.Add(1)
				continue
			}
			d.deliver(ctx, click)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, click Click) {
	ctx, span := d.tracer.Start(ctx, "analytics.click",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("click.id", click.ID),
			attribute.String("click.category", string(click.Category)),
			attribute.String("click.label", click.Label),
			attribute.String("click.broker", click.BrokerSlug),
			attribute.String("click.page", click.Page),
			attribute.String("click.locale", click.Locale),
		),
	)
	defer span.End()

	failed := false
	for _, sink := range d.sinks {
		if err := sink.Record(ctx, click); err != nil {
			failed = true
			span.RecordError(err)
			d.logger.Printf("analytics sink failed sink=%s click_id=%s category=%s err=%v", sink.Name(), click.ID, click.Category, err)
		}
	}
	if failed {
		d.failed.Add(1)
		span.SetStatus(codes.Error, "sink failure")
		return
	}
	d.delivered.Add(1)
}
