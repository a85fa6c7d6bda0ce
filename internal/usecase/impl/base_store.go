package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// baseStore implements the per-invocation Idle -> Pending -> Fulfilled|Rejected
// lifecycle shared by every store.
//
// Operations registered as replacing carry a sequence number per operation
// name. When discardStale is set, a settlement older than the last settled
// invocation of the same operation is dropped. Without it the last invocation
// to settle wins.
type baseStore[S any] struct {
	name         string
	logger       *slog.Logger
	discardStale bool
	clone        func(S) S

	mu         sync.Mutex
	state      S
	status     usecase.Status
	ops        map[string]usecase.Status
	inflight   int
	opInflight map[string]int
	issued     map[string]uint64
	settled    map[string]uint64
	version    uint64

	// publishMu serializes listener calls; delivered is the last version handed out.
	publishMu sync.Mutex
	delivered uint64

	listenersMu  sync.Mutex
	listeners    map[uint64]usecase.Listener[S]
	nextListener uint64
}

func newBaseStore[S any](name string, initial S, clone func(S) S, discardStale bool, logger *slog.Logger) *baseStore[S] {
	return &baseStore[S]{
		name:         name,
		logger:       logger.With(slog.String("store", name)),
		discardStale: discardStale,
		clone:        clone,
		state:        initial,
		ops:          make(map[string]usecase.Status),
		opInflight:   make(map[string]int),
		issued:       make(map[string]uint64),
		settled:      make(map[string]uint64),
		listeners:    make(map[uint64]usecase.Listener[S]),
	}
}

// ticket identifies one invocation of an operation.
type ticket struct {
	op        string
	seq       uint64
	replacing bool
}

func (b *baseStore[S]) Snapshot() usecase.Snapshot[S] {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotLocked()
}

func (b *baseStore[S]) Subscribe(l usecase.Listener[S]) (unsubscribe func()) {
	b.listenersMu.Lock()
	defer b.listenersMu.Unlock()

	b.nextListener++
	id := b.nextListener
	b.listeners[id] = l

	var once sync.Once

	return func() {
		once.Do(func() {
			b.listenersMu.Lock()
			defer b.listenersMu.Unlock()
			delete(b.listeners, id)
		})
	}
}

func (b *baseStore[S]) ClearError() {
	b.mu.Lock()
	b.status.Error = nil
	for op, st := range b.ops {
		st.Error = nil
		b.ops[op] = st
	}
	snap := b.commitLocked()
	b.mu.Unlock()

	b.publish(snap)
}

// begin moves an invocation to Pending: the store and the operation are
// marked loading and their errors cleared.
func (b *baseStore[S]) begin(op string, replacing bool) ticket {
	b.mu.Lock()
	b.issued[op]++
	t := ticket{op: op, seq: b.issued[op], replacing: replacing}
	b.inflight++
	b.opInflight[op]++
	b.status = usecase.Status{Loading: true}
	b.ops[op] = usecase.Status{Loading: true}
	snap := b.commitLocked()
	b.mu.Unlock()

	b.logger.Debug("Operation started", slog.String("operation", op), slog.Uint64("seq", t.seq))
	b.publish(snap)

	return t
}

// settle moves an invocation to Fulfilled (se == nil, apply runs under the
// lock) or Rejected. Prior data is never touched on rejection.
func (b *baseStore[S]) settle(t ticket, se *domainerrors.StoreError, apply func(*S)) {
	b.mu.Lock()
	b.inflight--
	b.opInflight[t.op]--

	stale := b.discardStale && t.replacing && t.seq < b.settled[t.op]
	if !stale && t.seq > b.settled[t.op] {
		b.settled[t.op] = t.seq
	}

	if b.discardStale {
		b.status.Loading = b.inflight > 0
	} else {
		b.status.Loading = false
	}

	opStatus := b.ops[t.op]
	opStatus.Loading = b.opInflight[t.op] > 0
	if !b.discardStale {
		opStatus.Loading = false
	}

	if !stale {
		if se != nil {
			b.status.Error = se
			opStatus.Error = se
		} else {
			opStatus.Error = nil
			if apply != nil {
				apply(&b.state)
			}
		}
	}
	b.ops[t.op] = opStatus

	snap := b.commitLocked()
	b.mu.Unlock()

	attrs := []any{slog.String("operation", t.op), slog.Uint64("seq", t.seq)}
	switch {
	case stale:
		b.logger.Debug("Stale settlement discarded", attrs...)
	case se != nil:
		b.logger.Warn("Operation rejected", append(attrs, slog.String("kind", se.Kind().String()), slog.String("error", se.Error()))...)
	default:
		b.logger.Debug("Operation fulfilled", attrs...)
	}

	b.publish(snap)
}

// update applies a synchronous local change that involves no network call.
func (b *baseStore[S]) update(fn func(*S)) {
	b.mu.Lock()
	fn(&b.state)
	snap := b.commitLocked()
	b.mu.Unlock()

	b.publish(snap)
}

func (b *baseStore[S]) commitLocked() usecase.Snapshot[S] {
	b.version++

	return b.snapshotLocked()
}

func (b *baseStore[S]) snapshotLocked() usecase.Snapshot[S] {
	return usecase.Snapshot[S]{
		State:      b.clone(b.state),
		Status:     b.status,
		Operations: maps.Clone(b.ops),
		Version:    b.version,
	}
}

// publish hands snap to every listener unless a newer snapshot was already delivered.
func (b *baseStore[S]) publish(snap usecase.Snapshot[S]) {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	if snap.Version <= b.delivered {
		return
	}
	b.delivered = snap.Version

	b.listenersMu.Lock()
	ids := make([]uint64, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	listeners := make([]usecase.Listener[S], 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, b.listeners[id])
	}
	b.listenersMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// run executes one invocation: begin, call, normalize the error, settle.
// The returned error is the *StoreError recorded in the status, or nil.
func run[S, R any](
	ctx context.Context,
	b *baseStore[S],
	op string,
	replacing bool,
	fallback string,
	call func(ctx context.Context) (R, error),
	apply func(state *S, result R),
) error {
	t := b.begin(op, replacing)

	result, err := call(ctx)
	if err != nil {
		se := domainerrors.Normalize(err, fallback)
		b.settle(t, se, nil)

		return se
	}

	b.settle(t, nil, func(s *S) { apply(s, result) })

	return nil
}
