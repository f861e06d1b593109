package signals

// Binding is a single listener attachment. The owning Signal holds the only
// strong reference to it; the binding keeps a non-owning back-reference so
// it can detach itself. Detaching clears both the back-reference and the
// listener, which is terminal: a detached binding can never rebind.
type Binding struct {
	listener *Listener
	signal   *Signal
	isOnce   bool
	context  any
	priority int
	active   bool
	params   []any
}

func newBinding(s *Signal, l *Listener, once bool, cfg bindingConfig) *Binding {
	return &Binding{
		listener: l,
		signal:   s,
		isOnce:   once,
		context:  cfg.context,
		priority: cfg.priority,
		active:   true,
		params:   cfg.params,
	}
}

// Execute invokes the listener with the binding's context and curried params
// ahead of args and returns the listener's result. Inactive or unbound
// bindings return nil and have no side effect. A once binding detaches right
// after the call, whatever the result was.
func (b *Binding) Execute(args ...any) any {
	if !b.active || b.listener == nil {
		return nil
	}
	effective := make([]any, 0, len(b.params)+len(args)+1)
	if b.context != nil {
		effective = append(effective, b.context)
	}
	effective = append(effective, b.params...)
	effective = append(effective, args...)
	result := (*b.listener)(effective...)
	if b.isOnce {
		b.Detach()
	}
	return result
}

// Detach removes the binding from its signal and clears its state. Returns
// the listener handle, or nil if the binding was already detached.
func (b *Binding) Detach() *Listener {
	if !b.IsBound() {
		return nil
	}
	l := b.listener
	b.signal.Remove(l)
	return l
}

// IsBound reports whether the binding still has both its signal and its
// listener.
func (b *Binding) IsBound() bool {
	return b.signal != nil && b.listener != nil
}

func (b *Binding) IsOnce() bool {
	return b.isOnce
}

func (b *Binding) Priority() int {
	return b.priority
}

func (b *Binding) Active() bool {
	return b.active
}

// SetActive gates execution. An inactive binding is skipped during dispatch
// but stays attached.
func (b *Binding) SetActive(active bool) {
	b.active = active
}

func (b *Binding) Context() any {
	return b.context
}

func (b *Binding) SetContext(ctx any) {
	b.context = ctx
}

func (b *Binding) Params() []any {
	return b.params
}

func (b *Binding) SetParams(params ...any) {
	b.params = params
}

// destroy severs the owner and listener references. Only the owning signal
// calls this, while removing the binding from its sequence.
func (b *Binding) destroy() {
	b.signal = nil
	b.listener = nil
	b.context = nil
}
