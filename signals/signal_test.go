package signals_test

import (
	"testing"

	"github.com/mpmedia/js-signals/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(into *[]string, name string) *signals.Listener {
	return signals.NewListener(func(args ...any) any {
		*into = append(*into, name)
		return nil
	})
}

// higher priority executes first regardless of attach order
func TestDispatchPriorityOrder(t *testing.T) {
	sig := signals.New()
	order := []string{}

	_, err := sig.Add(recorder(&order, "low"))
	require.NoError(t, err)
	_, err = sig.Add(recorder(&order, "high"), signals.WithPriority(10))
	require.NoError(t, err)
	_, err = sig.Add(recorder(&order, "mid"), signals.WithPriority(5))
	require.NoError(t, err)

	sig.Dispatch()
	assert.Equal(t, []string{"high", "mid", "low"}, order)
}

// equal priorities execute in attach order
func TestDispatchEqualPriorityFIFO(t *testing.T) {
	sig := signals.New()
	order := []string{}

	sig.Add(recorder(&order, "first"))
	sig.Add(recorder(&order, "second"))
	sig.Add(recorder(&order, "third"))

	sig.Dispatch()
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// attach order stays stable within a priority band even when other bands
// are interleaved
func TestDispatchInterleavedPriorities(t *testing.T) {
	sig := signals.New()
	order := []string{}

	sig.Add(recorder(&order, "a0"))
	sig.Add(recorder(&order, "a1"), signals.WithPriority(1))
	sig.Add(recorder(&order, "b0"))
	sig.Add(recorder(&order, "b1"), signals.WithPriority(1))

	sig.Dispatch()
	assert.Equal(t, []string{"a1", "b1", "a0", "b0"}, order)
}

// dispatch args reach every listener
func TestDispatchArgs(t *testing.T) {
	sig := signals.New()
	var got []any
	l := signals.NewListener(func(args ...any) any {
		got = args
		return nil
	})
	sig.Add(l)

	sig.Dispatch(1, "two", 3.0)
	assert.Equal(t, []any{1, "two", 3.0}, got)
}

// a once listener runs exactly once across any number of dispatches
func TestAddOnceRunsExactlyOnce(t *testing.T) {
	sig := signals.New()
	calls := 0
	l := signals.NewListener(func(args ...any) any {
		calls++
		return nil
	})
	_, err := sig.AddOnce(l)
	require.NoError(t, err)
	assert.Equal(t, 1, sig.NumListeners())

	sig.Dispatch()
	sig.Dispatch()
	sig.Dispatch()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, sig.NumListeners())
	assert.False(t, sig.Has(l))
}

// adding the same handle twice returns the same binding and does not
// duplicate execution
func TestAddSameHandleTwice(t *testing.T) {
	sig := signals.New()
	calls := 0
	l := signals.NewListener(func(args ...any) any {
		calls++
		return nil
	})

	b1, err := sig.Add(l)
	require.NoError(t, err)
	b2, err := sig.Add(l)
	require.NoError(t, err)

	assert.Same(t, b1, b2)
	assert.Equal(t, 1, sig.NumListeners())

	sig.Dispatch()
	assert.Equal(t, 1, calls)
}

// two handles wrapping the same function are distinct listeners
func TestDistinctHandlesSameFunc(t *testing.T) {
	sig := signals.New()
	calls := 0
	fn := func(args ...any) any {
		calls++
		return nil
	}

	sig.Add(signals.NewListener(fn))
	sig.Add(signals.NewListener(fn))
	assert.Equal(t, 2, sig.NumListeners())

	sig.Dispatch()
	assert.Equal(t, 2, calls)
}

// re-registering an identity with a different once flag fails, in either order
func TestConflictingOnceState(t *testing.T) {
	l := signals.NewListener(func(args ...any) any { return nil })

	sig := signals.New()
	_, err := sig.Add(l)
	require.NoError(t, err)
	_, err = sig.AddOnce(l)
	assert.ErrorIs(t, err, signals.ErrConflictingOnceState)

	sig = signals.New()
	_, err = sig.AddOnce(l)
	require.NoError(t, err)
	_, err = sig.Add(l)
	assert.ErrorIs(t, err, signals.ErrConflictingOnceState)
}

// a nil handle and a handle around a nil func are both invalid
func TestAddInvalidListener(t *testing.T) {
	sig := signals.New()

	_, err := sig.Add(nil)
	assert.ErrorIs(t, err, signals.ErrInvalidListener)

	_, err = sig.AddOnce(signals.NewListener(nil))
	assert.ErrorIs(t, err, signals.ErrInvalidListener)

	_, err = sig.Remove(nil)
	assert.ErrorIs(t, err, signals.ErrInvalidListener)
}

// returning false stops lower-priority listeners in the same dispatch
func TestFalseReturnStopsPropagation(t *testing.T) {
	sig := signals.New()
	order := []string{}

	sig.Add(signals.NewListener(func(args ...any) any {
		order = append(order, "stopper")
		return false
	}), signals.WithPriority(1))
	sig.Add(recorder(&order, "never"))

	sig.Dispatch()
	assert.Equal(t, []string{"stopper"}, order)
}

// calling Halt has the same effect as returning false
func TestHaltStopsPropagation(t *testing.T) {
	sig := signals.New()
	order := []string{}

	sig.Add(signals.NewListener(func(args ...any) any {
		order = append(order, "halter")
		sig.Halt()
		return nil
	}), signals.WithPriority(1))
	sig.Add(recorder(&order, "never"))

	sig.Dispatch()
	assert.Equal(t, []string{"halter"}, order)
}

// Halt outside a dispatch has no observable effect on the next one
func TestHaltOutsideDispatch(t *testing.T) {
	sig := signals.New()
	calls := 0
	sig.Add(signals.NewListener(func(args ...any) any {
		calls++
		return nil
	}))

	sig.Halt()
	sig.Dispatch()
	assert.Equal(t, 1, calls)
}

// with memorize, a late listener is replayed the last dispatch args exactly
// once at attach time
func TestMemorizeReplaysLateListener(t *testing.T) {
	sig := signals.New(signals.WithMemorize())
	sig.Dispatch(1, 2)

	var got [][]any
	l := signals.NewListener(func(args ...any) any {
		got = append(got, args)
		return nil
	})
	sig.Add(l)
	assert.Equal(t, [][]any{{1, 2}}, got)

	sig.Dispatch(3)
	assert.Equal(t, [][]any{{1, 2}, {3}}, got)
}

// a memorized once listener detaches right after its replay
func TestMemorizeReplayOnce(t *testing.T) {
	sig := signals.New(signals.WithMemorize())
	sig.Dispatch("x")

	calls := 0
	sig.AddOnce(signals.NewListener(func(args ...any) any {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, sig.NumListeners())
}

// Forget drops the remembered args without touching the bindings
func TestForget(t *testing.T) {
	sig := signals.New(signals.WithMemorize())
	sig.Dispatch(42)
	require.NoError(t, sig.Forget())

	calls := 0
	sig.Add(signals.NewListener(func(args ...any) any {
		calls++
		return nil
	}))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, sig.NumListeners())
}

// removing an unknown handle is silent and returns the handle
func TestRemoveUnknownHandle(t *testing.T) {
	sig := signals.New()
	l := signals.NewListener(func(args ...any) any { return nil })

	got, err := sig.Remove(l)
	require.NoError(t, err)
	assert.Same(t, l, got)
}

// RemoveAll followed by Dispatch invokes nothing and does not fail
func TestRemoveAllThenDispatch(t *testing.T) {
	sig := signals.New()
	calls := 0
	sig.Add(signals.NewListener(func(args ...any) any {
		calls++
		return nil
	}))

	require.NoError(t, sig.RemoveAll())
	require.NoError(t, sig.Dispatch())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, sig.NumListeners())
}

// an inactive signal drops dispatches entirely
func TestInactiveSignal(t *testing.T) {
	sig := signals.New()
	calls := 0
	sig.Add(signals.NewListener(func(args ...any) any {
		calls++
		return nil
	}))

	sig.SetActive(false)
	sig.Dispatch()
	assert.Equal(t, 0, calls)

	sig.SetActive(true)
	sig.Dispatch()
	assert.Equal(t, 1, calls)
}

// a listener added during a dispatch only runs on the following dispatch
func TestReentrantAdd(t *testing.T) {
	sig := signals.New()
	lateCalls := 0
	late := signals.NewListener(func(args ...any) any {
		lateCalls++
		return nil
	})

	sig.Add(signals.NewListener(func(args ...any) any {
		sig.Add(late)
		return nil
	}))

	sig.Dispatch()
	assert.Equal(t, 0, lateCalls)

	sig.Dispatch()
	assert.Equal(t, 1, lateCalls)
}

// a listener removed during a dispatch does not run in that dispatch, and
// the remaining listeners still do
func TestReentrantRemove(t *testing.T) {
	sig := signals.New()
	order := []string{}
	victim := signals.NewListener(func(args ...any) any {
		order = append(order, "victim")
		return nil
	})

	sig.Add(signals.NewListener(func(args ...any) any {
		order = append(order, "remover")
		sig.Remove(victim)
		return nil
	}), signals.WithPriority(2))
	sig.Add(victim, signals.WithPriority(1))
	sig.Add(recorder(&order, "tail"))

	sig.Dispatch()
	assert.Equal(t, []string{"remover", "tail"}, order)
}

// a reentrant dispatch runs to completion before the outer one resumes
func TestReentrantDispatch(t *testing.T) {
	sig := signals.New()
	order := []string{}
	depth := 0

	sig.Add(signals.NewListener(func(args ...any) any {
		order = append(order, "head")
		if depth == 0 {
			depth++
			sig.Dispatch()
		}
		return nil
	}), signals.WithPriority(1))
	sig.Add(recorder(&order, "tail"))

	sig.Dispatch()
	assert.Equal(t, []string{"head", "head", "tail", "tail"}, order)
}

// a panicking listener is not isolated; the panic reaches the caller
func TestListenerPanicPropagates(t *testing.T) {
	sig := signals.New()
	tailCalls := 0
	sig.Add(signals.NewListener(func(args ...any) any {
		panic("listener blew up")
	}), signals.WithPriority(1))
	sig.Add(signals.NewListener(func(args ...any) any {
		tailCalls++
		return nil
	}))

	require.Panics(t, func() {
		sig.Dispatch()
	})
	assert.Equal(t, 0, tailCalls)
}

// every mutating operation fails after Dispose
func TestUseAfterDispose(t *testing.T) {
	sig := signals.New()
	l := signals.NewListener(func(args ...any) any { return nil })
	sig.Add(l)

	require.NoError(t, sig.Dispose())
	assert.True(t, sig.Disposed())

	_, err := sig.Add(l)
	assert.ErrorIs(t, err, signals.ErrDisposed)
	_, err = sig.AddOnce(l)
	assert.ErrorIs(t, err, signals.ErrDisposed)
	_, err = sig.Remove(l)
	assert.ErrorIs(t, err, signals.ErrDisposed)
	assert.ErrorIs(t, sig.RemoveAll(), signals.ErrDisposed)
	assert.ErrorIs(t, sig.Dispatch(), signals.ErrDisposed)
	assert.ErrorIs(t, sig.Forget(), signals.ErrDisposed)
	assert.ErrorIs(t, sig.Dispose(), signals.ErrDisposed)

	assert.False(t, sig.Has(l))
	assert.Equal(t, 0, sig.NumListeners())
}
