package runner

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// BestScoreStore is the persistence contract for the best score.
// LoadBestScore reports false when nothing has been stored yet.
type BestScoreStore interface {
	LoadBestScore() (int, bool, error)
	SaveBestScore(score int) error
}

// BestWriter stores best scores on a background goroutine so the tick
// loop never waits on I/O. Only the most recent pending score is kept.
// After the first failure it stops writing and the best score lives in
// memory for the rest of the process.
type BestWriter struct {
	store  BestScoreStore
	logger *log.Logger

	mu      sync.Mutex
	closed  bool
	pending chan int
	done    chan struct{}

	degraded atomic.Bool
	written  atomic.Int64
}

// OpenBest reads the stored best score and starts a writer for it.
// A nil store, or one that fails to load, yields a writer that only
// remembers scores in memory.
func OpenBest(store BestScoreStore, logger *log.Logger) (int, *BestWriter) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		return 0, NewBestWriter(nil, logger)
	}

	best, ok, err := store.LoadBestScore()
	if err != nil {
		logger.Warn("could not load best score, keeping it in memory", "error", err)
		w := NewBestWriter(nil, logger)
		w.degraded.Store(true)
		return 0, w
	}
	if !ok || best < 0 {
		best = 0
	}
	return best, NewBestWriter(store, logger)
}

// NewBestWriter starts a writer for store. A nil store disables persistence.
func NewBestWriter(store BestScoreStore, logger *log.Logger) *BestWriter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &BestWriter{
		store:   store,
		logger:  logger,
		pending: make(chan int, 1),
		done:    make(chan struct{}),
	}
	if store == nil {
		w.closed = true
		close(w.done)
		return w
	}
	go w.run()
	return w
}

// Submit queues score for storage and returns immediately.
// A score still waiting in the queue is replaced.
func (w *BestWriter) Submit(score int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.degraded.Load() {
		return
	}
	for {
		select {
		case w.pending <- score:
			return
		default:
		}
		// Slot taken by an older score; drop it in favour of this one
		select {
		case <-w.pending:
		default:
		}
	}
}

// run drains the queue until Close.
func (w *BestWriter) run() {
	defer close(w.done)
	for score := range w.pending {
		if w.degraded.Load() {
			continue
		}
		if err := w.store.SaveBestScore(score); err != nil {
			w.logger.Warn("could not store best score, keeping it in memory", "score", score, "error", err)
			w.degraded.Store(true)
			continue
		}
		w.written.Add(1)
		w.logger.Debug("best score stored", "score", score)
	}
}

// Close flushes the pending score and stops the writer.
func (w *BestWriter) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.pending)
	}
	w.mu.Unlock()
	<-w.done
}

// Degraded reports whether persistence has been abandoned.
func (w *BestWriter) Degraded() bool {
	return w.degraded.Load()
}

// Written returns how many scores reached the store.
func (w *BestWriter) Written() int {
	return int(w.written.Load())
}
