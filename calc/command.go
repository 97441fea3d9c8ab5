package calc

import (
	"github.com/kbukum/streamcalc/pipeline"
)

// Kind tells whether a command pulls its input one value at a time or
// needs all of it at once.
type Kind int

const (
	// KindStreaming commands hold at most a constant-size accumulator.
	KindStreaming Kind = iota
	// KindBatch commands materialize the whole input before producing output.
	KindBatch
)

func (k Kind) String() string {
	switch k {
	case KindStreaming:
		return "streaming"
	case KindBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// Capability names an optional runtime facility a command depends on.
type Capability string

// CapabilityStats is provided when a statistics backend was selected.
const CapabilityStats Capability = "statistics backend"

// Transform turns the number stream into a result stream. A nil Transform
// passes every number through as a Scalar.
type Transform func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result]

// Formatter renders one Result. Multi-line output is returned as a single
// string with embedded newlines.
type Formatter func(Result) (string, error)

// Command is a named calculator operation.
type Command struct {
	Name      string
	Help      string
	Kind      Kind
	Requires  Capability
	Transform Transform
	Format    Formatter
}

// Entry is one line of the command listing.
type Entry struct {
	Name string
	Help string
}
