package usecase

import (
	"context"
	"sync"
	"time"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const persistTimeout = 10 * time.Second

type persistOp struct {
	clear    bool
	snapshot entities.Snapshot
}

// Persister is the background write queue of a Store. Requests coalesce:
// only the most recent pending request is executed, so the slot converges to
// the last mutation. A failed write is logged and superseded by the next one.
type Persister struct {
	repo   interfaces.ISnapshotRepository
	logger *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *persistOp
	busy    bool
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

func NewPersister(repo interfaces.ISnapshotRepository, logger *zap.Logger) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Persister{
		repo:   repo,
		logger: logger.With(zap.String("component", "persister")),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	go p.loop()
	return p
}

// Enqueue schedules a save of s. It never blocks on I/O.
func (p *Persister) Enqueue(s entities.Snapshot) {
	p.submit(&persistOp{snapshot: s})
}

// EnqueueClear schedules wiping the slot.
func (p *Persister) EnqueueClear() {
	p.submit(&persistOp{clear: true})
}

func (p *Persister) submit(op *persistOp) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.pending = op
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) loop() {
	defer close(p.done)
	for range p.wake {
		p.drain()
	}
	p.drain()
}

func (p *Persister) drain() {
	for {
		p.mu.Lock()
		op := p.pending
		p.pending = nil
		if op == nil {
			p.busy = false
			p.cond.Broadcast()
			p.mu.Unlock()
			return
		}
		p.busy = true
		p.mu.Unlock()

		p.execute(op)
	}
}

func (p *Persister) execute(op *persistOp) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if op.clear {
		if err := p.repo.Clear(ctx); err != nil {
			p.logger.Warn("clearing snapshot failed", zap.Error(err))
		}
		return
	}
	if err := p.repo.Save(ctx, op.snapshot); err != nil {
		p.logger.Warn("saving snapshot failed; next mutation retries", zap.Error(err))
	}
}

// Flush blocks until every request submitted so far has been executed.
func (p *Persister) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.pending != nil || p.busy {
		p.cond.Wait()
	}
}

// Close stops accepting requests, runs what is pending and waits for the
// worker to exit or ctx to end.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.wake)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
