package typed

import "github.com/mpmedia/js-signals/signals"

type Signal1[T0 any] struct {
	core *signals.Signal
}

func New1[T0 any](opts ...signals.SignalOption) *Signal1[T0] {
	return &Signal1[T0]{core: signals.New(opts...)}
}

func (s *Signal1[T0]) Core() *signals.Signal {
	return s.core
}

func (s *Signal1[T0]) Add(fn func(T0), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.Add(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal1[T0]) AddOnce(fn func(T0), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.AddOnce(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal1[T0]) Dispatch(arg0 T0) error {
	return s.core.Dispatch(
		arg0,
	)
}

func (s *Signal1[T0]) Halt() {
	s.core.Halt()
}

func (s *Signal1[T0]) NumListeners() int {
	return s.core.NumListeners()
}

func (s *Signal1[T0]) RemoveAll() error {
	return s.core.RemoveAll()
}

func (s *Signal1[T0]) Forget() error {
	return s.core.Forget()
}

func (s *Signal1[T0]) Dispose() error {
	return s.core.Dispose()
}

type Signal2[T0, T1 any] struct {
	core *signals.Signal
}

func New2[T0, T1 any](opts ...signals.SignalOption) *Signal2[T0, T1] {
	return &Signal2[T0, T1]{core: signals.New(opts...)}
}

func (s *Signal2[T0, T1]) Core() *signals.Signal {
	return s.core
}

func (s *Signal2[T0, T1]) Add(fn func(T0, T1), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.Add(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal2[T0, T1]) AddOnce(fn func(T0, T1), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.AddOnce(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal2[T0, T1]) Dispatch(arg0 T0, arg1 T1) error {
	return s.core.Dispatch(
		arg0,
		arg1,
	)
}

func (s *Signal2[T0, T1]) Halt() {
	s.core.Halt()
}

func (s *Signal2[T0, T1]) NumListeners() int {
	return s.core.NumListeners()
}

func (s *Signal2[T0, T1]) RemoveAll() error {
	return s.core.RemoveAll()
}

func (s *Signal2[T0, T1]) Forget() error {
	return s.core.Forget()
}

func (s *Signal2[T0, T1]) Dispose() error {
	return s.core.Dispose()
}

type Signal3[T0, T1, T2 any] struct {
	core *signals.Signal
}

func New3[T0, T1, T2 any](opts ...signals.SignalOption) *Signal3[T0, T1, T2] {
	return &Signal3[T0, T1, T2]{core: signals.New(opts...)}
}

func (s *Signal3[T0, T1, T2]) Core() *signals.Signal {
	return s.core
}

func (s *Signal3[T0, T1, T2]) Add(fn func(T0, T1, T2), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.Add(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal3[T0, T1, T2]) AddOnce(fn func(T0, T1, T2), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.AddOnce(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal3[T0, T1, T2]) Dispatch(arg0 T0, arg1 T1, arg2 T2) error {
	return s.core.Dispatch(
		arg0,
		arg1,
		arg2,
	)
}

func (s *Signal3[T0, T1, T2]) Halt() {
	s.core.Halt()
}

func (s *Signal3[T0, T1, T2]) NumListeners() int {
	return s.core.NumListeners()
}

func (s *Signal3[T0, T1, T2]) RemoveAll() error {
	return s.core.RemoveAll()
}

func (s *Signal3[T0, T1, T2]) Forget() error {
	return s.core.Forget()
}

func (s *Signal3[T0, T1, T2]) Dispose() error {
	return s.core.Dispose()
}

type Signal4[T0, T1, T2, T3 any] struct {
	core *signals.Signal
}

func New4[T0, T1, T2, T3 any](opts ...signals.SignalOption) *Signal4[T0, T1, T2, T3] {
	return &Signal4[T0, T1, T2, T3]{core: signals.New(opts...)}
}

func (s *Signal4[T0, T1, T2, T3]) Core() *signals.Signal {
	return s.core
}

func (s *Signal4[T0, T1, T2, T3]) Add(fn func(T0, T1, T2, T3), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.Add(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
			args[3].(T3),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal4[T0, T1, T2, T3]) AddOnce(fn func(T0, T1, T2, T3), priority int) (*signals.Binding, error) {
	if fn == nil {
		return nil, signals.ErrInvalidListener
	}
	return s.core.AddOnce(signals.NewListener(func(args ...any) any {
		fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
			args[3].(T3),
		)
		return nil
	}), signals.WithPriority(priority))
}

func (s *Signal4[T0, T1, T2, T3]) Dispatch(arg0 T0, arg1 T1, arg2 T2, arg3 T3) error {
	return s.core.Dispatch(
		arg0,
		arg1,
		arg2,
		arg3,
	)
}

func (s *Signal4[T0, T1, T2, T3]) Halt() {
	s.core.Halt()
}

func (s *Signal4[T0, T1, T2, T3]) NumListeners() int {
	return s.core.NumListeners()
}

func (s *Signal4[T0, T1, T2, T3]) RemoveAll() error {
	return s.core.RemoveAll()
}

func (s *Signal4[T0, T1, T2, T3]) Forget() error {
	return s.core.Forget()
}

func (s *Signal4[T0, T1, T2, T3]) Dispose() error {
	return s.core.Dispose()
}
