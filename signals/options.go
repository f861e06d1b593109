package signals

type bindingConfig struct {
	priority int
	context  any
	params   []any
}

// BindingOption configures a Binding at attach time.
type BindingOption func(*bindingConfig)

// WithPriority sets the binding's priority. Higher priorities execute
// earlier; the default is 0.
func WithPriority(priority int) BindingOption {
	return func(c *bindingConfig) {
		c.priority = priority
	}
}

// WithContext sets the value the listener runs against. When set it is
// passed as the listener's first argument, ahead of curried params and
// dispatch args.
func WithContext(ctx any) BindingOption {
	return func(c *bindingConfig) {
		c.context = ctx
	}
}

// WithParams curries values onto the binding; they precede the dispatch
// args on every execution.
func WithParams(params ...any) BindingOption {
	return func(c *bindingConfig) {
		c.params = params
	}
}

type signalConfig struct {
	memorize bool
}

// SignalOption configures a Signal at construction.
type SignalOption func(*signalConfig)

// WithMemorize makes the signal record the args of its most recent dispatch
// and replay them to any listener attached afterwards.
func WithMemorize() SignalOption {
	return func(c *signalConfig) {
		c.memorize = true
	}
}

type compoundConfig struct {
	unique   bool
	override bool
}

// CompoundOption configures a CompoundSignal at construction.
type CompoundOption func(*compoundConfig)

// WithRepeat makes the compound re-arm after each resolution instead of
// settling once: collected state is cleared automatically and a full new
// round of source dispatches fires it again.
func WithRepeat() CompoundOption {
	return func(c *compoundConfig) {
		c.unique = false
	}
}

// WithOverride lets a source that fires again before the round completes
// overwrite its previously collected slot. The default keeps the first
// recorded args per source.
func WithOverride() CompoundOption {
	return func(c *compoundConfig) {
		c.override = true
	}
}
