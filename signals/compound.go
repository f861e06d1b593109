package signals

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// CompoundSignal joins several source signals into one completion event: it
// fires its own listeners once every source has dispatched for the current
// round, with each source's args collected by position. By default it
// settles like a promise (memorize on, unique on): late listeners still
// receive the collected result, and further source activity is ignored
// until an explicit Reset. WithRepeat opts into a repeating join instead.
//
// The compound never owns its sources; disposing it detaches its private
// per-source bindings and leaves the sources alone.
type CompoundSignal struct {
	Signal

	sources   []*Signal
	taps      []*Binding
	collected [][]any
	filled    mapset.Set[int]
	resolved  bool
	unique    bool
	override  bool
}

// NewCompound attaches a private repeating binding to each source, curried
// with the source's position, so the compound records who fired with what.
func NewCompound(sources []*Signal, opts ...CompoundOption) (*CompoundSignal, error) {
	cfg := compoundConfig{unique: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	cs := &CompoundSignal{
		Signal:    Signal{active: true, memorize: true},
		sources:   sources,
		taps:      make([]*Binding, 0, len(sources)),
		collected: make([][]any, len(sources)),
		filled:    mapset.NewThreadUnsafeSet[int](),
		unique:    cfg.unique,
		override:  cfg.override,
	}
	for i, src := range sources {
		tap, err := src.Add(NewListener(cs.collect), WithParams(i))
		if err != nil {
			for _, t := range cs.taps {
				t.Detach()
			}
			return nil, err
		}
		cs.taps = append(cs.taps, tap)
	}
	return cs, nil
}

// collect receives (position, sourceArgs...) from a source's dispatch.
// First write wins per slot unless override is on. Once every slot is
// filled the compound dispatches itself with the collected lists.
func (cs *CompoundSignal) collect(args ...any) any {
	i := args[0].(int)
	if cs.override || !cs.filled.Contains(i) {
		cs.collected[i] = args[1:]
		cs.filled.Add(i)
	}
	if cs.filled.Cardinality() == len(cs.sources) && (!cs.resolved || !cs.unique) {
		cs.Dispatch(cs.collectedArgs()...)
	}
	return nil
}

func (cs *CompoundSignal) collectedArgs() []any {
	out := make([]any, len(cs.collected))
	for i, c := range cs.collected {
		out[i] = c
	}
	return out
}

// Dispatch fires the compound's own listeners. Once resolved, a unique
// compound ignores any supplied args and replays the collected ones, like
// an already settled promise. Otherwise the args dispatch normally and the
// compound marks itself resolved; a unique compound then detaches its own
// listeners (memorization still serves late subscribers), a repeating one
// resets for the next round.
func (cs *CompoundSignal) Dispatch(args ...any) error {
	if cs.disposed {
		return ErrDisposed
	}
	if cs.resolved && cs.unique {
		return cs.Signal.Dispatch(cs.collectedArgs()...)
	}
	cs.resolved = true
	err := cs.Signal.Dispatch(args...)
	if cs.unique {
		cs.RemoveAll()
	} else {
		cs.Reset()
	}
	return err
}

// Reset clears the collected round and the resolved flag. The private
// source bindings stay attached.
func (cs *CompoundSignal) Reset() error {
	if cs.disposed {
		return ErrDisposed
	}
	cs.collected = make([][]any, len(cs.sources))
	cs.filled.Clear()
	cs.resolved = false
	return nil
}

// IsResolved reports whether a full round has completed at least once.
func (cs *CompoundSignal) IsResolved() bool {
	return cs.resolved
}

// Sources returns the compound's source signals in position order.
func (cs *CompoundSignal) Sources() []*Signal {
	return cs.sources
}

// Dispose detaches the private bindings from the sources and releases the
// compound's state. The sources themselves are not disposed.
func (cs *CompoundSignal) Dispose() error {
	if cs.disposed {
		return ErrDisposed
	}
	for _, tap := range cs.taps {
		tap.Detach()
	}
	cs.taps = nil
	cs.sources = nil
	cs.collected = nil
	cs.filled = nil
	return cs.Signal.Dispose()
}
