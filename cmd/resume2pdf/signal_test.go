package main

// Notes:
// - notifyContext: we test context creation, cancellation via stop(), and
//   parent propagation. Actual OS signal delivery is not tested.

import (
	"context"
	"os"
	"slices"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not canceled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v, want nil", ctx.Err())
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if ctx.Err() == nil {
			t.Fatal("context should be canceled after stop()")
		}
	})

	t.Run("inherits parent cancellation", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		if ctx.Err() == nil {
			t.Fatal("context should be canceled when parent is canceled")
		}
	})
}

func TestStopSignals(t *testing.T) {
	t.Parallel()

	if !slices.Contains(stopSignals, os.Interrupt) {
		t.Errorf("stopSignals = %v, want os.Interrupt included", stopSignals)
	}
}
