package tex2mml

import (
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	t.Run("sets the timeout", func(t *testing.T) {
		conv := NewConverter(WithTimeout(time.Minute), WithCompiler(&fakeCompiler{}))
		if conv.cfg.timeout != time.Minute {
			t.Errorf("timeout = %v, want %v", conv.cfg.timeout, time.Minute)
		}
	})

	t.Run("zero duration panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("WithTimeout(0) did not panic")
			}
		}()
		WithTimeout(0)
	})

	t.Run("negative duration panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("WithTimeout(-1) did not panic")
			}
		}()
		WithTimeout(-time.Second)
	})
}

func TestNewConverter_Defaults(t *testing.T) {
	conv := NewConverter(WithCompiler(&fakeCompiler{}))
	if conv.cfg.timeout != defaultTimeout {
		t.Errorf("default timeout = %v, want %v", conv.cfg.timeout, defaultTimeout)
	}
	if conv.cfg.logf == nil {
		t.Error("default logger is nil")
	}
}

func TestNewConverter_DefaultCompiler(t *testing.T) {
	conv := NewConverter()
	defer conv.Close()

	if _, ok := conv.compiler.(*mathJaxCompiler); !ok {
		t.Errorf("default compiler = %T, want *mathJaxCompiler", conv.compiler)
	}
}
