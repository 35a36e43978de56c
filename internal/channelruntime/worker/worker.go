package worker

import (
	"context"
	"fmt"
	"sync"
)

type StartOptions[J any] struct {
	Ctx    context.Context
	Sem    chan struct{}
	Jobs   <-chan J
	Handle func(context.Context, J)
	// Done, when set, runs once the loop exits.
	Done func()
}

// Start runs jobs one at a time in arrival order. Each job holds one slot of
// Sem while it runs.
func Start[J any](opts StartOptions[J]) {
	go func() {
		if opts.Done != nil {
			defer opts.Done()
		}
		for {
			select {
			case <-opts.Ctx.Done():
				return
			case job, ok := <-opts.Jobs:
				if !ok {
					return
				}
				select {
				case opts.Sem <- struct{}{}:
				case <-opts.Ctx.Done():
					return
				}
				func() {
					defer func() { <-opts.Sem }()
					opts.Handle(opts.Ctx, job)
				}()
			}
		}
	}()
}

func Enqueue[J any](ctx, workersCtx context.Context, jobs chan<- J, job J) error {
	if ctx == nil {
		ctx = workersCtx
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-workersCtx.Done():
		return workersCtx.Err()
	case jobs <- job:
		return nil
	}
}

type PoolOptions[J any] struct {
	// MaxConcurrency caps how many jobs run at once across all keys.
	MaxConcurrency int
	// QueueDepth is the buffered backlog per key.
	QueueDepth int
	Handle     func(context.Context, J)
}

// Pool keeps one serial queue per key. Jobs that share a key run in the order
// they were enqueued; jobs with different keys run concurrently up to
// MaxConcurrency.
type Pool[K comparable, J any] struct {
	ctx    context.Context
	sem    chan struct{}
	depth  int
	handle func(context.Context, J)

	mu     sync.Mutex
	queues map[K]chan J
	wg     sync.WaitGroup
}

func NewPool[K comparable, J any](ctx context.Context, opts PoolOptions[J]) (*Pool[K, J], error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is required")
	}
	if opts.Handle == nil {
		return nil, fmt.Errorf("handle func is required")
	}
	maxConc := opts.MaxConcurrency
	if maxConc <= 0 {
		maxConc = 1
	}
	depth := opts.QueueDepth
	if depth <= 0 {
		depth = 16
	}
	return &Pool[K, J]{
		ctx:    ctx,
		sem:    make(chan struct{}, maxConc),
		depth:  depth,
		handle: opts.Handle,
		queues: make(map[K]chan J),
	}, nil
}

// Enqueue adds job to key's queue, starting the queue's worker on first use.
// It blocks while the queue is full.
func (p *Pool[K, J]) Enqueue(ctx context.Context, key K, job J) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	return Enqueue(ctx, p.ctx, p.queue(key), job)
}

func (p *Pool[K, J]) queue(key K) chan J {
	p.mu.Lock()
	defer p.mu.Unlock()
	if q, ok := p.queues[key]; ok {
		return q
	}
	q := make(chan J, p.depth)
	p.queues[key] = q
	p.wg.Add(1)
	Start(StartOptions[J]{
		Ctx:    p.ctx,
		Sem:    p.sem,
		Jobs:   q,
		Handle: p.handle,
		Done:   p.wg.Done,
	})
	return q
}

// Wait blocks until every worker has exited. Workers exit when the pool
// context is done.
func (p *Pool[K, J]) Wait() {
	p.wg.Wait()
}
