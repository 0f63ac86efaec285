package workerpool

import (
	"context"
	"runtime"
	"sync"

	"github.com/doccat/doccat/errors"
)

// Job is a unit of work scheduled onto a Pool.
type Job func() error

// Pool runs jobs on a fixed number of worker goroutines. A caller acquires one for
// the duration of a computation and releases it deterministically with Stop, so
// parallelism never outlives the phase that needed it.
type Pool struct {
	cancel context.CancelFunc

	mu      sync.Mutex
	work    *sync.Cond
	idle    *sync.Cond
	queue   []Job
	pending int
	errs    errors.Errors
	stopped bool
}

// New returns a pool running at most workers jobs concurrently.
// workers <= 0 means one worker per CPU.
func New(workers int) *Pool {
	return NewWithCtx(context.Background(), workers)
}

// NewWithCtx returns a pool that stops scheduling new jobs once ctx is done.
// Jobs already running are allowed to finish.
func NewWithCtx(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{cancel: cancel}
	p.work = sync.NewCond(&p.mu)
	p.idle = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	go func() {
		<-ctx.Done()
		p.Stop()
	}()
	return p
}

// Add enqueues jobs for execution. Add never blocks on job execution.
// Jobs added after Stop are dropped.
func (p *Pool) Add(jobs []Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.queue = append(p.queue, jobs...)
	p.pending += len(jobs)
	p.work.Broadcast()
}

// Wait blocks until every pending job has finished, then returns the combined
// error of all failed jobs, or nil if none failed. Wait is the single join point:
// a caller aggregating job results after Wait never observes a partial batch.
func (p *Pool) Wait() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.pending > 0 {
		p.idle.Wait()
	}
	if p.errs == nil {
		return nil
	}
	return p.errs
}

// Stop removes unstarted jobs and releases the workers once running jobs finish.
// Safe to call more than once and concurrently with Wait.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		p.pending -= len(p.queue)
		p.queue = nil
		p.work.Broadcast()
		if p.pending == 0 {
			p.idle.Broadcast()
		}
	}
	p.mu.Unlock()
	p.cancel()
}

func (p *Pool) worker() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.stopped {
			p.work.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		err := job()

		p.mu.Lock()
		p.errs = errors.Append(p.errs, err)
		p.pending--
		if p.pending == 0 {
			p.idle.Broadcast()
		}
		p.mu.Unlock()
	}
}
