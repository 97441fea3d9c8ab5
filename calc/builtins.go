package calc

import (
	"math"

	"github.com/kbukum/streamcalc/stats"
)

// DefaultBins is the histogram bin count when none is configured.
const DefaultBins = 10

// HistOptions controls the hist command.
type HistOptions struct {
	Bins     int
	MaxWidth int
	Tick     string
}

// Options configures the built-in commands.
type Options struct {
	// Stats backs median, hist and summary. Nil leaves CapabilityStats
	// unprovided, so those commands fail with MISSING_DEPENDENCY.
	Stats stats.Backend
	Hist  HistOptions
	// Precision is passed to FormatNumber; 0 prints the shortest form.
	Precision int
}

func (o *Options) applyDefaults() {
	if o.Hist.Bins < 1 {
		o.Hist.Bins = DefaultBins
	}
	if o.Hist.MaxWidth <= 0 {
		o.Hist.MaxWidth = 80
	}
	if o.Hist.Tick == "" {
		o.Hist.Tick = "#"
	}
}

// Builtins returns a registry holding every calculator command.
func Builtins(opts Options) *Registry {
	opts.applyDefaults()
	r := NewRegistry(NumberFormatter(opts.Precision))

	sum := Fold(0, add)
	r.Register(Command{Name: "sum", Help: "Add a list of numbers", Transform: sum})
	r.Register(Command{Name: "add", Help: "see sum", Transform: sum})
	r.Register(Command{Name: "prod", Help: "Multiply a list of numbers", Transform: Fold(1, mul)})
	r.Register(Command{Name: "max", Help: "Max", Transform: Extremum("max", greater)})
	r.Register(Command{Name: "min", Help: "Min", Transform: Extremum("min", less)})

	r.Register(Command{Name: "sqrt", Help: "Square Root", Transform: Elementwise(math.Sqrt)})
	r.Register(Command{Name: "exp", Help: "Exponentiate every element in the list", Transform: Elementwise(math.Exp)})
	r.Register(Command{Name: "log", Help: "Take the log of every element in the list", Transform: Elementwise(math.Log)})
	r.Register(Command{Name: "cumsum", Help: "Cumulative sum", Transform: Running(0, add)})
	r.Register(Command{Name: "cumprod", Help: "Cumulative product", Transform: Running(1, mul)})

	r.Register(Command{Name: "mean", Help: "Mean", Transform: WithMoments(func(m Moments) Result { return Scalar(m.Mean()) })})
	r.Register(Command{Name: "var", Help: "Variance", Transform: WithMoments(func(m Moments) Result { return Scalar(m.Var()) })})
	r.Register(Command{Name: "std", Help: "Standard Deviation", Transform: WithMoments(func(m Moments) Result { return Scalar(m.Std()) })})
	r.Register(Command{Name: "mean_var", Help: "Computes mean & variance with one pass",
		Transform: WithMoments(func(m Moments) Result { return MeanVar{Mean: m.Mean(), Var: m.Var()} })})

	r.Register(Command{Name: "print", Help: "Just print the (cleaned) input"})
	r.Register(Command{Name: "help", Help: "Print this message"})

	// Batch commands are registered with or without a backend so they show
	// up in the listing; Process refuses them when the capability is absent.
	backend := opts.Stats
	r.Register(Command{Name: "median", Help: "Median", Kind: KindBatch, Requires: CapabilityStats,
		Transform: Median(backend)})
	r.Register(Command{Name: "hist", Help: "Produce a histogram", Kind: KindBatch, Requires: CapabilityStats,
		Transform: Hist(backend, opts.Hist.Bins), Format: HistogramFormatter(opts.Hist.MaxWidth, opts.Hist.Tick)})
	r.Register(Command{Name: "summary", Help: "Summary statistics (not streaming mode)", Kind: KindBatch, Requires: CapabilityStats,
		Transform: Describe(backend), Format: SummaryFormatter()})

	if backend != nil {
		r.Provide(CapabilityStats)
	}
	return r
}
