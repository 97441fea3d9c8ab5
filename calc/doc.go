// Package calc holds the calculator commands and the registry that
// dispatches them.
//
// A Command pairs a Transform, which folds or maps a lazy stream of numbers
// into a stream of Results, with a Formatter that renders each Result as
// one chunk of output. Streaming commands (sum, mean, cumsum, ...) pull
// values one at a time; batch commands (median, hist, summary) gather the
// whole input and need a statistics backend, advertised to the registry as
// the CapabilityStats capability.
//
// Typical use:
//
//	reg := calc.Builtins(calc.Options{Stats: backend})
//	out, err := reg.Process("mean", numbers)
//	if err != nil {
//	    return err
//	}
//	err = pipeline.ForEach(ctx, out, func(_ context.Context, line string) error {
//	    _, err := fmt.Fprintln(w, line)
//	    return err
//	})
package calc
