package taxonomy

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	perr "taller/internal/platform/errors"
	"taller/internal/platform/logger"

	"golang.org/x/sync/singleflight"
)

// Source is the read side of the taxonomy store
// implementations return only active rows
type Source interface {
	ActiveCategories(ctx context.Context, kind Kind) ([]Category, error)
	ActiveKeywords(ctx context.Context, kind Kind) ([]Keyword, error)
}

// Stat describes the cached state of one kind
type Stat struct {
	Kind       Kind      `json:"kind"`
	Loaded     bool      `json:"loaded"`
	Keywords   int       `json:"keywords"`
	Categories int       `json:"categories"`
	Generation uint64    `json:"generation"`
	LoadedAt   time.Time `json:"loaded_at,omitzero"`
}

// Loader memoizes one snapshot per kind and publishes reloads atomically
// Readers never lock; Invalidate and publish share a small mutex so a load that
// started before an invalidate can never be published after it
type Loader struct {
	src Source
	log logger.Logger
	now func() time.Time

	mu    sync.Mutex // guards gen bumps against publish
	gen   atomic.Uint64
	parts atomic.Pointer[Snapshot]
	labor atomic.Pointer[Snapshot]
	sf    singleflight.Group
}

// LoaderOption customizes a Loader
type LoaderOption func(*Loader)

// WithLogger sets the loader logger
func WithLogger(l logger.Logger) LoaderOption { return func(x *Loader) { x.log = l } }

// WithClock overrides time.Now, mostly for tests
func WithClock(now func() time.Time) LoaderOption { return func(x *Loader) { x.now = now } }

// NewLoader constructs a Loader over src
func NewLoader(src Source, opts ...LoaderOption) *Loader {
	if src == nil {
		panic("taxonomy: nil Source")
	}
	l := &Loader{src: src, now: time.Now, log: logger.Nop()}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loader) slot(kind Kind) *atomic.Pointer[Snapshot] {
	switch kind {
	case KindPart:
		return &l.parts
	case KindLabor:
		return &l.labor
	}
	return nil
}

// Load returns the cached snapshot for kind, loading it on first use
// Concurrent cold loads of the same kind and generation share one source round trip
func (l *Loader) Load(ctx context.Context, kind Kind) (*Snapshot, error) {
	slot := l.slot(kind)
	if slot == nil {
		return nil, perr.InvalidArgf("unknown taxonomy kind %q", kind)
	}
	if s := slot.Load(); s != nil {
		return s, nil
	}

	gen := l.gen.Load()
	key := string(kind) + "@" + strconv.FormatUint(gen, 10)
	v, err, _ := l.sf.Do(key, func() (any, error) {
		if s := slot.Load(); s != nil {
			return s, nil
		}
		s, err := l.fetch(ctx, kind, gen)
		if err != nil {
			return nil, err
		}
		l.publish(slot, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Mapping is Load flattened into the normalized keyword to entries map
func (l *Loader) Mapping(ctx context.Context, kind Kind) (map[string][]Entry, error) {
	s, err := l.Load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.Mapping(), nil
}

// fetch builds a snapshot off to the side
func (l *Loader) fetch(ctx context.Context, kind Kind, gen uint64) (*Snapshot, error) {
	cats, err := l.src.ActiveCategories(ctx, kind)
	if err != nil {
		return nil, Unavailable(kind, err)
	}
	kws, err := l.src.ActiveKeywords(ctx, kind)
	if err != nil {
		return nil, Unavailable(kind, err)
	}
	s := Build(kind, cats, kws)
	s.Generation = gen
	s.LoadedAt = l.now()
	return s, nil
}

// publish stores s unless an Invalidate happened since its load started
func (l *Loader) publish(slot *atomic.Pointer[Snapshot], s *Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen.Load() != s.Generation {
		l.log.Debug().Str("kind", string(s.Kind)).Uint64("generation", s.Generation).Msg("taxonomy load superseded by invalidate")
		return
	}
	slot.Store(s)
	l.log.Debug().
		Str("kind", string(s.Kind)).
		Int("keywords", s.Len()).
		Int("categories", s.Categories()).
		Uint64("generation", s.Generation).
		Msg("taxonomy loaded")
}

// Invalidate drops both cached snapshots; the next Load reads the source again
func (l *Loader) Invalidate() {
	l.mu.Lock()
	gen := l.gen.Add(1)
	l.parts.Store(nil)
	l.labor.Store(nil)
	l.mu.Unlock()
	l.log.Info().Uint64("generation", gen).Msg("taxonomy cache invalidated")
}

// Generation counts invalidations since construction
func (l *Loader) Generation() uint64 { return l.gen.Load() }

// Stats reports the cached state of every kind without triggering a load
func (l *Loader) Stats() []Stat {
	out := make([]Stat, 0, len(Kinds))
	for _, k := range Kinds {
		st := Stat{Kind: k, Generation: l.gen.Load()}
		if s := l.slot(k).Load(); s != nil {
			st.Loaded = true
			st.Keywords = s.Len()
			st.Categories = s.Categories()
			st.LoadedAt = s.LoadedAt
		}
		out = append(out, st)
	}
	return out
}
