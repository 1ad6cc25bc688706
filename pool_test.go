package tex2mml

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

// Compile-time interface check.
var _ interface {
	Acquire(context.Context) (*Converter, error)
	Release(*Converter)
	Size() int
	Close() error
} = (*ConverterPool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pool := NewConverterPool(2, WithCompiler(&fakeCompiler{output: "<math></math>"}))
	defer pool.Close()

	if pool.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", pool.Size())
	}

	a, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	b, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil converter")
	}
	if a == b {
		t.Error("Acquire() returned the same converter twice while both held")
	}

	pool.Release(a)
	c, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if c != a {
		t.Error("Acquire() after Release() should reuse the released converter")
	}
	pool.Release(b)
	pool.Release(c)
}

func TestConverterPool_MinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(0)
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1 for n < 1", pool.Size())
	}
}

func TestConverterPool_AcquireCanceled(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithCompiler(&fakeCompiler{}))
	defer pool.Close()

	conv, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer pool.Release(conv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire() on saturated pool with canceled context: error = %v, want %v", err, context.Canceled)
	}
}

func TestConverterPool_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithCompiler(&fakeCompiler{}))
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close(): error = %v, want %v", err, ErrPoolClosed)
	}
}

func TestConverterPool_ReleaseAfterClose(t *testing.T) {
	t.Parallel()

	fc := &fakeCompiler{}
	pool := NewConverterPool(1, WithCompiler(fc))

	conv, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	// Close with the converter checked out, then hand it back. The late
	// Release must not panic and must close the straggler.
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	pool.Release(conv)

	if !fc.closed {
		t.Error("Release() after Close() should close the converter")
	}
}

func TestConverterPool_ConcurrentAcquire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pool := NewConverterPool(3, WithCompiler(&fakeCompiler{output: "<math></math>"}))
	defer pool.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv, err := pool.Acquire(ctx)
			if err != nil {
				t.Errorf("Acquire() error = %v", err)
				return
			}
			pool.Release(conv)
		}()
	}
	wg.Wait()
}

func TestConverterPool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithCompiler(&fakeCompiler{}))
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}
