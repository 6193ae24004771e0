package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
	"github.com/taller/store-api/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher writes audit entries asynchronously through a fixed set of
// workers. Entries for the same entity row always land on the same worker,
// so they are persisted in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

var _ ports.AuditRecorder = (*Dispatcher)(nil)

// Start launches all worker goroutines. Workers run until Stop closes their
// queues; inserts keep ctx's values but not its cancellation.
func (d *Dispatcher) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(base, i, ch)
	}
}

// Record enqueues entry without blocking. The entry is dropped when the
// worker queue is full or the dispatcher has been stopped.
func (d *Dispatcher) Record(_ context.Context, entry domain.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.drop(entry, "dispatcher stopped")
		return
	}

	idx := d.shardIndex(shardKey(entry))
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.drop(entry, "queue full")
	}
}

// Stop closes every queue and waits for the workers to drain them, or for
// ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audit dispatcher drain: %w", ctx.Err())
	}
}

func shardKey(entry domain.AuditEntry) string {
	return entry.Entity + ":" + strconv.FormatInt(entry.EntityID, 10)
}

// shardIndex maps a shard key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) drop(entry domain.AuditEntry, reason string) {
	metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
	d.log.Warn().
		Str("entity", entry.Entity).
		Int64("entity_id", entry.EntityID).
		Str("action", string(entry.Action)).
		Str("reason", reason).
		Msg("audit entry dropped")
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))

	for entry := range ch {
		depth.Set(float64(len(ch)))

		insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
		err := d.repo.Insert(insertCtx, entry)
		cancel()

		if err != nil {
			metrics.AuditEntriesTotal.WithLabelValues("failed").Inc()
			d.log.Error().Err(err).
				Str("entity", entry.Entity).
				Int64("entity_id", entry.EntityID).
				Int("worker_id", id).
				Msg("audit entry write failed")
			continue
		}
		metrics.AuditEntriesTotal.WithLabelValues("written").Inc()
	}
}
