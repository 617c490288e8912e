package testkit

import (
	"testing"
	"time"
)

var (
	clock   = func() time.Time { return time.Unix(0, 0) }
	workers = 4
)

func TestSwapRestoresFunc(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clock, func() time.Time { return fixed })
		if !clock().Equal(fixed) {
			t.Fatalf("clock() = %v, want %v", clock(), fixed)
		}
	})
	if clock().Unix() != 0 {
		t.Fatalf("clock not restored: %v", clock())
	}
}

func TestSwapRestoresValue(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &workers, 1)
		if workers != 1 {
			t.Fatalf("workers = %d", workers)
		}
	})
	if workers != 4 {
		t.Fatalf("workers not restored: %d", workers)
	}
}

func TestSerialExcludes(t *testing.T) {
	entered := make(chan struct{})
	t.Run("holder", func(t *testing.T) {
		Serial(t)
		go func() {
			seamMu.Lock()
			close(entered)
			seamMu.Unlock()
		}()
		select {
		case <-entered:
			t.Fatal("lock acquired while Serial held it")
		case <-time.After(50 * time.Millisecond):
		}
	})
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("lock not released after the test ended")
	}
}
