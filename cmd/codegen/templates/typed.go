package templates

import (
	"fmt"
	"strings"
)

// TypedGen renders the arity-typed wrapper package over the dynamic signals
// core, one SignalN stanza per arity up to count.
func TypedGen(count int) string {
	sb := &strings.Builder{}
	sb.WriteString("package typed\n\n")
	sb.WriteString("import \"github.com/mpmedia/js-signals/signals\"\n")

	for n := 1; n <= count; n++ {
		tp := prefixedStrings("T", n)
		name := fmt.Sprintf("Signal%d[%s]", n, tp)
		fnType := fmt.Sprintf("func(%s)", tp)

		fmt.Fprintf(sb, "\ntype Signal%d[%s any] struct {\n\tcore *signals.Signal\n}\n\n", n, tp)
		fmt.Fprintf(sb, "func New%d[%s any](opts ...signals.SignalOption) *%s {\n\treturn &%s{core: signals.New(opts...)}\n}\n\n", n, tp, name, name)
		fmt.Fprintf(sb, "func (s *%s) Core() *signals.Signal {\n\treturn s.core\n}\n\n", name)

		for _, method := range []string{"Add", "AddOnce"} {
			fmt.Fprintf(sb, "func (s *%s) %s(fn %s, priority int) (*signals.Binding, error) {\n", name, method, fnType)
			sb.WriteString("\tif fn == nil {\n\t\treturn nil, signals.ErrInvalidListener\n\t}\n")
			fmt.Fprintf(sb, "\treturn s.core.%s(signals.NewListener(func(args ...any) any {\n\t\tfn(\n", method)
			for i := 0; i < n; i++ {
				fmt.Fprintf(sb, "\t\t\targs[%d].(T%d),\n", i, i)
			}
			sb.WriteString("\t\t)\n\t\treturn nil\n\t}), signals.WithPriority(priority))\n}\n\n")
		}

		fmt.Fprintf(sb, "func (s *%s) Dispatch(%s) error {\n\treturn s.core.Dispatch(\n", name, argParams(n))
		for i := 0; i < n; i++ {
			fmt.Fprintf(sb, "\t\targ%d,\n", i)
		}
		sb.WriteString("\t)\n}\n\n")

		fmt.Fprintf(sb, "func (s *%s) Halt() {\n\ts.core.Halt()\n}\n\n", name)
		fmt.Fprintf(sb, "func (s *%s) NumListeners() int {\n\treturn s.core.NumListeners()\n}\n\n", name)
		fmt.Fprintf(sb, "func (s *%s) RemoveAll() error {\n\treturn s.core.RemoveAll()\n}\n\n", name)
		fmt.Fprintf(sb, "func (s *%s) Forget() error {\n\treturn s.core.Forget()\n}\n\n", name)
		fmt.Fprintf(sb, "func (s *%s) Dispose() error {\n\treturn s.core.Dispose()\n}\n", name)
	}
	return sb.String()
}
