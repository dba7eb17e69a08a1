package main

import (
	"context"
	"runtime"
	"sync"

	resumepdf "github.com/alnah/go-resumepdf"
)

// Converter is the interface the CLI needs from the conversion library.
type Converter interface {
	Convert(ctx context.Context, input resumepdf.Input) (*resumepdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*resumepdf.Converter)(nil)

// Pool abstracts converter pooling for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// ConverterPool manages a pool of converters for parallel batch processing.
// Each converter owns its own browser instance, enabling true parallelism.
// Converters are created lazily on first acquire to avoid startup delay.
type ConverterPool struct {
	size       int
	factory    func() Converter
	converters []Converter
	sem        chan Converter
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewConverterPool creates a pool with capacity for n converters built by
// factory. Converters are created lazily when acquired.
func NewConverterPool(n int, factory func() Converter) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size:       n,
		factory:    factory,
		converters: make([]Converter, 0, n),
		sem:        make(chan Converter, n),
	}
}

// Compile-time check that ConverterPool implements Pool.
var _ Pool = (*ConverterPool)(nil)

// Acquire gets a converter from the pool, creating one if needed.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() Converter {
	// Try to get an existing converter (non-blocking)
	select {
	case conv := <-p.sem:
		return conv
	default:
	}

	// Check if we can create a new converter
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create outside the lock
		conv := p.factory()

		p.mu.Lock()
		p.converters = append(p.converters, conv)
		p.mu.Unlock()

		return conv
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(conv Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- conv
	}
}

// Close releases all browser resources.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	converters := p.converters
	p.mu.Unlock()

	var lastErr error
	for _, conv := range converters {
		if err := conv.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	n := runtime.GOMAXPROCS(0) / 2

	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
