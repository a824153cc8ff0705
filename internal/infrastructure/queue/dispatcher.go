package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/api/metrics"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the entity id, preserving per-record ordering in the
// audit trail. It implements ports.ActivityRecorder.
type Dispatcher struct {
	workers []chan domain.ActivityEntry
	repo    ports.ActivityRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit entry for the worker responsible for its entity.
// When the worker's buffer is full the entry is dropped with a warning; the
// audit trail must never stall a request.
func (d *Dispatcher) Record(entry domain.ActivityEntry) {
	idx := d.shardIndex(entry.EntityID)
	select {
	case d.workers[idx] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("entity", entry.Entity).
			Str("entity_id", entry.EntityID).
			Msg("activity queue full, entry dropped")
	}
}

// shardIndex maps an entity id deterministically to a worker index.
func (d *Dispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	// Reduce in uint32 space; int(Sum32()) overflows negative on 32-bit ints.
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))

			start := time.Now()
			result := "ok"
			if err := d.repo.Insert(ctx, &entry); err != nil {
				result = "error"
				d.log.Error().Err(err).
					Str("entity", entry.Entity).
					Str("entity_id", entry.EntityID).
					Int("worker_id", id).
					Msg("activity write failed")
			}
			metrics.ActivityWriteDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
		}
	}
}
