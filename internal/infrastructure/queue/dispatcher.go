package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/api/metrics"
	"github.com/featherpost/social-api/internal/core/ports"
)

const (
	defaultWorkers = 6
	channelBuffer  = 256
)

// Dispatcher fans hashtag occurrences out to a fixed set of workers using
// consistent hashing on the tag, so counts for the same tag are applied in
// order. Request handlers only enqueue; the trending store is updated off
// the request path.
type Dispatcher struct {
	workers []chan string
	trends  ports.TrendingStore
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, trends ports.TrendingStore, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		trends:  trends,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue routes a tag to the worker responsible for it. Non-blocking up to
// channelBuffer capacity.
func (d *Dispatcher) Enqueue(tag string) {
	idx := d.shardIndex(tag)
	d.workers[idx] <- tag
	metrics.HashtagQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a tag deterministically to a worker index.
func (d *Dispatcher) shardIndex(tag string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tag))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case tag, ok := <-ch:
			if !ok {
				return
			}
			if err := d.trends.Bump(ctx, tag); err != nil {
				d.log.Error().Err(err).
					Str("tag", tag).
					Int("worker_id", id).
					Msg("trending update failed")
			}
			metrics.HashtagQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
