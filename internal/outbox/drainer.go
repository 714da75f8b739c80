package outbox

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

// SubmitFunc delivers one pending entry to the backend.
type SubmitFunc func(ctx context.Context, entry Entry) error

// DrainerConfig holds drain worker settings.
type DrainerConfig struct {
	Interval  time.Duration
	BatchSize int
}

// DefaultDrainerConfig returns the default drain cadence.
func DefaultDrainerConfig() DrainerConfig {
	return DrainerConfig{
		Interval:  30 * time.Second,
		BatchSize: 50,
	}
}

// Drainer periodically takes a batch off the outbox and submits each entry.
// Failed entries are re-queued with their attempt count bumped, so nothing
// is lost while the backend is down.
type Drainer struct {
	outbox Outbox
	submit SubmitFunc
	cfg    DrainerConfig
	log    *logger.Logger

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	mu      sync.Mutex

	submitted atomic.Int64
	requeued  atomic.Int64
}

// NewDrainer creates a drain worker.
func NewDrainer(ob Outbox, submit SubmitFunc, cfg DrainerConfig, log *logger.Logger) *Drainer {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultDrainerConfig().Interval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultDrainerConfig().BatchSize
	}
	return &Drainer{
		outbox: ob,
		submit: submit,
		cfg:    cfg,
		log:    log,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the drain loop. Calling Start twice is a no-op.
func (d *Drainer) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true

	go d.run()
	d.log.Info("outbox drainer started",
		zap.Duration("interval", d.cfg.Interval),
		zap.Int("batch_size", d.cfg.BatchSize))
}

// Stop shuts the loop down and waits for the in-flight drain to finish.
// Stopping twice, or before Start, is a no-op.
func (d *Drainer) Stop() {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	close(d.stopCh)
	<-d.doneCh
	d.log.Info("outbox drainer stopped",
		zap.Int64("submitted", d.submitted.Load()),
		zap.Int64("requeued", d.requeued.Load()))
}

func (d *Drainer) run() {
	defer close(d.doneCh)

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.Drain(context.Background())
		case <-d.stopCh:
			// final drain so a clean shutdown flushes the queue
			d.Drain(context.Background())
			return
		}
	}
}

// Drain submits one batch immediately. Exposed so callers can flush without
// waiting for the ticker.
func (d *Drainer) Drain(ctx context.Context) {
	entries, err := d.outbox.Pending(ctx, d.cfg.BatchSize)
	if err != nil {
		d.log.ErrorContext(ctx, "read pending rsvps", zap.Error(err))
		return
	}
	if len(entries) == 0 {
		return
	}

	for _, entry := range entries {
		if err := d.submit(ctx, entry); err != nil {
			entry.Attempts++
			entry.LastError = err.Error()
			d.requeued.Add(1)
			d.log.WarnContext(ctx, "rsvp submit failed, re-queued",
				zap.String("entry_id", entry.ID),
				zap.String("event_id", entry.EventID),
				zap.Int("attempts", entry.Attempts),
				zap.Error(err))
			if qerr := d.outbox.Append(ctx, entry); qerr != nil {
				d.log.ErrorContext(ctx, "re-queue rsvp entry",
					zap.String("entry_id", entry.ID), zap.Error(qerr))
			}
			continue
		}
		d.submitted.Add(1)
	}

	d.log.InfoContext(ctx, "outbox drained",
		zap.Int("batch", len(entries)),
		zap.Int64("submitted_total", d.submitted.Load()),
		zap.Int64("requeued_total", d.requeued.Load()))
}

// Stats returns cumulative counts of submitted and re-queued entries.
func (d *Drainer) Stats() (submitted, requeued int64) {
	return d.submitted.Load(), d.requeued.Load()
}
