package tex2mml

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one converter is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ErrPoolClosed is returned by Acquire after the pool has been closed.
var ErrPoolClosed = errors.New("converter pool closed")

// ConverterPool bounds the number of live Converter instances so a batch can
// run in parallel without launching a browser per expression. A converter is
// built the first time a slot is taken with none idle, then reused on later
// acquires.
//
// slots holds one token per allowed converter; a goroutine must hold a token
// while it holds a converter. The idle stack and the closed flag are guarded
// by mu. Nothing ever closes the slots channel, so Release stays safe to call
// concurrently with Close.
type ConverterPool struct {
	opts  []Option
	slots chan struct{}

	mu     sync.Mutex
	idle   []*Converter
	closed bool
}

// NewConverterPool creates a pool admitting up to n concurrent converters,
// each configured with opts. No converter exists until the first Acquire.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}

	p := &ConverterPool{
		opts:  opts,
		slots: make(chan struct{}, n),
		idle:  make([]*Converter, 0, n),
	}
	for range n {
		p.slots <- struct{}{}
	}
	return p
}

// Acquire returns an idle converter, building a new one when the pool has
// room. It blocks while all slots are taken, and unblocks with ctx.Err()
// when ctx is canceled first. The caller must hand the converter back with
// Release.
func (p *ConverterPool) Acquire(ctx context.Context) (*Converter, error) {
	select {
	case <-p.slots:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.slots <- struct{}{}
		return nil, ErrPoolClosed
	}
	if n := len(p.idle); n > 0 {
		conv := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return conv, nil
	}
	p.mu.Unlock()

	// Holding a slot token with nothing idle means the pool is below
	// capacity. Construction runs outside the lock since the default
	// backend launches a browser on first use.
	return NewConverter(p.opts...), nil
}

// Release returns a converter obtained from Acquire. Once the pool is
// closed the converter is closed instead of being kept for reuse.
func (p *ConverterPool) Release(conv *Converter) {
	if conv == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = conv.Close()
		return
	}
	p.idle = append(p.idle, conv)
	p.mu.Unlock()

	p.slots <- struct{}{}
}

// Close closes every idle converter and marks the pool closed. Converters
// still checked out are closed by the Release that eventually returns them.
// Safe to call more than once.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	var errs []error
	for _, conv := range idle {
		if err := conv.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the maximum number of concurrent converters.
func (p *ConverterPool) Size() int {
	return cap(p.slots)
}

// ResolvePoolSize picks the pool capacity for a batch run. An explicit
// worker count wins; otherwise half of GOMAXPROCS (adjusted by automaxprocs
// inside containers), clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinPoolSize), MaxPoolSize)
}
