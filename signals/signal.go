// Package signals is a synchronous, in-process broadcaster: producers and
// consumers decouple through a Signal without referencing each other.
// Listeners run in priority order on every dispatch, can halt propagation,
// and can be replayed to late subscribers through memorization.
// CompoundSignal joins several signals into a single promise-like
// completion event.
//
// Everything here is single-threaded and reentrant, never parallel: a
// listener may freely add, remove or dispatch on the signal that is
// invoking it, and each dispatch walks a snapshot of the bindings taken
// when it started. None of the types are safe for concurrent use.
package signals

// Signal owns an ordered collection of bindings and fans a dispatch out to
// the active ones, highest priority first, attach order among equals.
type Signal struct {
	bindings    []*Binding
	active      bool
	memorize    bool
	lastParams  []any
	remembered  bool
	propagating bool
	disposed    bool
}

// New creates an empty Signal.
func New(opts ...SignalOption) *Signal {
	cfg := signalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Signal{
		active:   true,
		memorize: cfg.memorize,
	}
}

// Add attaches a repeating listener. Adding a handle that is already bound
// returns the existing binding; it fails with ErrConflictingOnceState if
// that binding was attached with AddOnce. When the signal memorizes and has
// already dispatched, the new binding executes immediately with the
// remembered args.
func (s *Signal) Add(l *Listener, opts ...BindingOption) (*Binding, error) {
	return s.register(l, false, opts)
}

// AddOnce attaches a listener that detaches itself after its first
// execution. The dedupe and memorize rules of Add apply.
func (s *Signal) AddOnce(l *Listener, opts ...BindingOption) (*Binding, error) {
	return s.register(l, true, opts)
}

func (s *Signal) register(l *Listener, once bool, opts []BindingOption) (*Binding, error) {
	if s.disposed {
		return nil, ErrDisposed
	}
	if l == nil || *l == nil {
		return nil, ErrInvalidListener
	}
	if b := s.lookup(l); b != nil {
		if b.isOnce != once {
			return nil, ErrConflictingOnceState
		}
		return b, nil
	}

	cfg := bindingConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := newBinding(s, l, once, cfg)
	s.insert(b)

	if s.memorize && s.remembered {
		b.Execute(s.lastParams...)
	}
	return b, nil
}

// insert keeps the sequence ascending by priority, newest-first among equal
// priorities, so the reverse walk in Dispatch runs higher priorities first
// and earliest-attached first on ties.
func (s *Signal) insert(b *Binding) {
	n := len(s.bindings)
	for n > 0 && b.priority <= s.bindings[n-1].priority {
		n--
	}
	s.bindings = append(s.bindings, nil)
	copy(s.bindings[n+1:], s.bindings[n:])
	s.bindings[n] = b
}

func (s *Signal) lookup(l *Listener) *Binding {
	for _, b := range s.bindings {
		if b.listener == l {
			return b
		}
	}
	return nil
}

// Remove detaches the binding for l and returns the handle. A handle that
// is not bound is returned unchanged without error.
func (s *Signal) Remove(l *Listener) (*Listener, error) {
	if s.disposed {
		return nil, ErrDisposed
	}
	if l == nil {
		return nil, ErrInvalidListener
	}
	for i, b := range s.bindings {
		if b.listener == l {
			b.destroy()
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			break
		}
	}
	return l, nil
}

// RemoveAll detaches every binding.
func (s *Signal) RemoveAll() error {
	if s.disposed {
		return ErrDisposed
	}
	for _, b := range s.bindings {
		b.destroy()
	}
	s.bindings = s.bindings[:0]
	return nil
}

// Has reports whether l is currently bound.
func (s *Signal) Has(l *Listener) bool {
	return s.lookup(l) != nil
}

// NumListeners returns the number of attached bindings, active or not.
func (s *Signal) NumListeners() int {
	return len(s.bindings)
}

// Halt stops the in-progress dispatch after the current listener returns.
// Outside a dispatch it has no observable effect; the flag is reset when
// the next dispatch starts.
func (s *Signal) Halt() {
	s.propagating = false
}

// Dispatch invokes every active binding with args, highest priority first.
// Propagation stops early when a listener calls Halt or returns the exact
// boolean false. The binding sequence is snapshotted up front, so listeners
// adding or removing bindings only affect later dispatches. A panic in a
// listener is not caught here; it reaches the Dispatch caller.
func (s *Signal) Dispatch(args ...any) error {
	if s.disposed {
		return ErrDisposed
	}
	if !s.active {
		return nil
	}
	if s.memorize {
		s.lastParams = args
		s.remembered = true
	}
	s.propagating = true

	snapshot := make([]*Binding, len(s.bindings))
	copy(snapshot, s.bindings)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if !s.propagating {
			break
		}
		if v, ok := snapshot[i].Execute(args...).(bool); ok && !v {
			break
		}
	}
	return nil
}

// Forget drops the memorized args of the previous dispatch without touching
// the current bindings.
func (s *Signal) Forget() error {
	if s.disposed {
		return ErrDisposed
	}
	s.lastParams = nil
	s.remembered = false
	return nil
}

// Active reports whether dispatching is enabled.
func (s *Signal) Active() bool {
	return s.active
}

// SetActive gates the whole signal; while false, Dispatch is a no-op.
func (s *Signal) SetActive(active bool) {
	s.active = active
}

// Memorizes reports whether the signal records dispatch args for replay.
func (s *Signal) Memorizes() bool {
	return s.memorize
}

// SetMemorize toggles memorization. Turning it off does not forget an
// already remembered dispatch; use Forget for that.
func (s *Signal) SetMemorize(memorize bool) {
	s.memorize = memorize
}

// Disposed reports whether Dispose has been called.
func (s *Signal) Disposed() bool {
	return s.disposed
}

// Dispose removes every binding and the remembered state. The signal is
// terminal afterwards: every mutating operation returns ErrDisposed and
// queries return zero values.
func (s *Signal) Dispose() error {
	if s.disposed {
		return ErrDisposed
	}
	s.RemoveAll()
	s.bindings = nil
	s.lastParams = nil
	s.remembered = false
	s.disposed = true
	return nil
}
