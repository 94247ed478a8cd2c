package mdsite

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; rendering is quickly I/O bound.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the file system and the caller.
	cpuDivisor = 2
)

// rendererPool hands out Renderers to workers. Each Renderer owns its own
// markdown engine, so workers never share parser state. Renderers are
// created lazily on first acquire.
type rendererPool struct {
	size    int
	factory func() *Renderer
	sem     chan *Renderer
	mu      sync.Mutex
	created int
	closed  bool
}

// newRendererPool creates a pool with capacity for n Renderers built by factory.
func newRendererPool(n int, factory func() *Renderer) *rendererPool {
	if n < 1 {
		n = 1
	}

	return &rendererPool{
		size:    n,
		factory: factory,
		sem:     make(chan *Renderer, n),
	}
}

// Acquire gets a renderer from the pool, creating one if needed.
// Blocks if all renderers are in use.
func (p *rendererPool) Acquire() *Renderer {
	// Try to get an existing renderer (non-blocking)
	select {
	case r := <-p.sem:
		return r
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new renderer outside the lock
		return p.factory()
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released
	return <-p.sem
}

// Release returns a renderer to the pool.
// The lock is released before sending to avoid deadlock when channel is full.
func (p *rendererPool) Release(r *Renderer) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- r
}

// Close stops the pool from taking renderers back.
func (p *rendererPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
}

// Size returns the pool capacity.
func (p *rendererPool) Size() int {
	return p.size
}

// Created returns how many renderers the pool has built so far.
func (p *rendererPool) Created() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs reporting the worker count.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
