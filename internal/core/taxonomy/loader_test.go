package taxonomy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	perr "taller/internal/platform/errors"
)

// fakeSource is an in-memory Source with call counting and an optional gate
type fakeSource struct {
	mu    sync.Mutex
	cats  map[Kind][]Category
	kws   map[Kind][]Keyword
	err   error
	calls atomic.Int32
	gate  chan struct{} // when set, ActiveKeywords blocks until it is closed
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		cats: map[Kind][]Category{
			KindPart:  {{ID: 1, Name: "Filtros"}},
			KindLabor: {{ID: 2, Name: "Mantenimiento General", Complexity: 1}},
		},
		kws: map[Kind][]Keyword{
			KindPart:  {{ID: 1, CategoryID: 1, Text: "filtro", Weight: 1}},
			KindLabor: {{ID: 2, CategoryID: 2, Text: "service", Weight: 1}},
		},
	}
}

func (f *fakeSource) ActiveCategories(_ context.Context, k Kind) ([]Category, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]Category(nil), f.cats[k]...), nil
}

func (f *fakeSource) ActiveKeywords(_ context.Context, k Kind) ([]Keyword, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]Keyword(nil), f.kws[k]...), nil
}

func (f *fakeSource) add(k Kind, c Category, kw Keyword) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cats[k] = append(f.cats[k], c)
	f.kws[k] = append(f.kws[k], kw)
}

func TestLoader_MemoizesPerKind(t *testing.T) {
	src := newFakeSource()
	l := NewLoader(src)
	ctx := context.Background()

	a, err := l.Load(ctx, KindPart)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, _ := l.Load(ctx, KindPart)
	if a != b {
		t.Fatal("second Load should return the cached snapshot")
	}
	if _, err := l.Load(ctx, KindLabor); err != nil {
		t.Fatalf("Load labor: %v", err)
	}
	if n := src.calls.Load(); n != 2 {
		t.Fatalf("source calls = %d, want 2 (one per kind)", n)
	}
}

func TestLoader_InvalidateReflectsNewKeywords(t *testing.T) {
	src := newFakeSource()
	l := NewLoader(src)
	ctx := context.Background()

	if _, err := l.Load(ctx, KindPart); err != nil {
		t.Fatal(err)
	}
	src.add(KindPart, Category{ID: 7, Name: "Correas"}, Keyword{ID: 7, CategoryID: 7, Text: "correa", Weight: 1})

	s, _ := l.Load(ctx, KindPart)
	if len(s.Entries("correa")) != 0 {
		t.Fatal("cache should still be stale before Invalidate")
	}

	l.Invalidate()
	s, err := l.Load(ctx, KindPart)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries("correa")) != 1 {
		t.Fatal("expected new keyword after Invalidate")
	}
	if s.Generation != 1 || l.Generation() != 1 {
		t.Fatalf("generation = %d/%d, want 1", s.Generation, l.Generation())
	}
}

func TestLoader_SourceFailureIsUnavailable(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("connection refused")
	l := NewLoader(src)

	s, err := l.Load(context.Background(), KindLabor)
	if err == nil || s != nil {
		t.Fatalf("expected error and nil snapshot, got %v, %v", s, err)
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected taxonomy unavailable, got %v", err)
	}
	if perr.HTTPStatus(err) != 503 {
		t.Fatalf("HTTPStatus = %d, want 503", perr.HTTPStatus(err))
	}

	// failure is not cached
	src.mu.Lock()
	src.err = nil
	src.mu.Unlock()
	if _, err := l.Load(context.Background(), KindLabor); err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
}

func TestLoader_UnknownKind(t *testing.T) {
	l := NewLoader(newFakeSource())
	if _, err := l.Load(context.Background(), Kind("engine")); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestLoader_ConcurrentColdLoadsCollapse(t *testing.T) {
	src := newFakeSource()
	src.gate = make(chan struct{})
	l := NewLoader(src)

	const n = 16
	var wg sync.WaitGroup
	got := make([]*Snapshot, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := l.Load(context.Background(), KindPart)
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			got[i] = s
		}(i)
	}
	close(src.gate)
	wg.Wait()

	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatal("concurrent loads returned different snapshots")
		}
	}
}

func TestLoader_LoadRacingInvalidateIsNotPublished(t *testing.T) {
	src := newFakeSource()
	src.gate = make(chan struct{})
	l := NewLoader(src)

	done := make(chan *Snapshot)
	go func() {
		s, _ := l.Load(context.Background(), KindPart)
		done <- s
	}()

	// wait until the load is inside the source, then invalidate under it
	for src.calls.Load() == 0 {
		// spin
	}
	l.Invalidate()
	close(src.gate)

	stale := <-done
	if stale == nil || stale.Generation != 0 {
		t.Fatalf("in-flight load should return its own snapshot, got %+v", stale)
	}
	for _, st := range l.Stats() {
		if st.Loaded {
			t.Fatalf("stale snapshot was published for %s", st.Kind)
		}
	}

	src.gate = nil
	fresh, err := l.Load(context.Background(), KindPart)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Generation != 1 {
		t.Fatalf("fresh generation = %d, want 1", fresh.Generation)
	}
}

func TestLoader_Stats(t *testing.T) {
	l := NewLoader(newFakeSource())
	if _, err := l.Load(context.Background(), KindLabor); err != nil {
		t.Fatal(err)
	}
	st := l.Stats()
	if len(st) != 2 || st[0].Loaded || !st[1].Loaded || st[1].Keywords != 1 || st[1].Categories != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}
