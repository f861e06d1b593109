package signals

// Listener is the callable a Signal invokes on dispatch. A handle is a
// *Listener and identity is pointer identity: the same handle attaches once
// no matter how many times it is added, and two handles wrapping the same
// function are still distinct listeners.
//
// Returning the exact boolean false halts the in-progress dispatch, same as
// calling Halt on the signal. Any other return value is passed through to
// Binding.Execute's caller and otherwise ignored by the signal.
type Listener func(args ...any) any

// NewListener wraps fn in a handle usable with Add, AddOnce, Has and Remove.
func NewListener(fn func(args ...any) any) *Listener {
	l := Listener(fn)
	return &l
}
