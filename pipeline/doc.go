// Package pipeline provides composable, pull-based data pipeline operators.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand, so
// a calculation over standard input reads one line per value it needs.
//
// # Operators
//
// Streaming (one value in, at most one value out, no buffering):
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value (logging, counting)
//   - Scan: emit the running accumulator after every value
//   - FlatMap: transform each value into an inner iterator and flatten
//
// Folding (consume everything, emit once):
//
//   - Reduce: accumulate all values into one result
//   - Gather: materialize all values into a slice, then compute one result
//
// Reduce keeps constant memory; Gather buffers its whole input and is what
// batch calculations (median, histograms) are built on.
//
// # Usage
//
//	src := pipeline.FromSlice([]float64{1, 2, 3, 4})
//	total := pipeline.Reduce(src, 0.0, func(acc, x float64) float64 { return acc + x })
//	results, _ := pipeline.Collect(ctx, total)
package pipeline
