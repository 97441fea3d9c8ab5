package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kbukum/streamcalc/calc"
	"github.com/kbukum/streamcalc/config"
	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/logger"
	"github.com/kbukum/streamcalc/parse"
	"github.com/kbukum/streamcalc/pipeline"
	"github.com/kbukum/streamcalc/source"
	"github.com/kbukum/streamcalc/stats"
	"github.com/kbukum/streamcalc/validation"
	"github.com/kbukum/streamcalc/version"
)

// ServiceName is used for config file discovery and log tagging.
const ServiceName = "calc"

const description = `Reads a list of numbers from the files or standard input if files are missing
and performs the calculation specified by the command.`

// Streams are the process's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Options tune how Execute loads its configuration.
type Options struct {
	// Environ replaces the process environment; nil reads os.Environ.
	Environ []string
	// FileSystem replaces the real filesystem for config discovery.
	FileSystem config.FileSystem
}

// Option configures Execute.
type Option func(*Options)

// WithEnviron sets the environment used for CALC_* overrides.
func WithEnviron(environ []string) Option {
	return func(o *Options) { o.Environ = environ }
}

// WithFileSystem sets the filesystem used for config discovery.
func WithFileSystem(fs config.FileSystem) Option {
	return func(o *Options) { o.FileSystem = fs }
}

// app carries one invocation's state.
type app struct {
	streams    Streams
	opts       Options
	configFile string
	envFile    string
	logLevel   string
	root       *cobra.Command
	log        *logger.Logger
}

// Execute runs calc with args (without the program name) and returns the
// process exit status.
func Execute(ctx context.Context, args []string, streams Streams, opts ...Option) int {
	a := &app{streams: streams, log: logger.Nop()}
	for _, opt := range opts {
		opt(&a.opts)
	}

	a.root = a.command()
	a.root.SetArgs(args)
	if err := a.root.ExecuteContext(ctx); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "calc [flags] <command> [bin_count] [files or -]",
		Short:         "A command-line calculator over streams of numbers",
		Long:          description,
		Version:       version.Get().String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args)
		},
	}
	root.SetIn(a.streams.In)
	root.SetOut(a.streams.Out)
	root.SetErr(a.streams.Err)
	root.SetVersionTemplate("calc {{.Version}}\n")

	flags := root.Flags()
	// Everything after the command name is a bin count or a file, even "-h".
	flags.SetInterspersed(false)
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./config.yml, ./config/config.yml)")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file with CALC_* overrides (default: ./.env.calc, ./.env)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Usage(err.Error())
	})
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(a.streams.Err, a.usage(cmd))
	})
	return root
}

// usage renders the help text with the full command listing.
func (a *app) usage(cmd *cobra.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s\n%s\n\nFlags:\n%s\nAvailable Commands:\n%s",
		cmd.UseLine(), description, cmd.Flags().FlagUsages(), calc.Builtins(calc.Options{}).Usage())
	return b.String()
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.Usage("no command given")
	}
	name := args[0]
	if name == "help" {
		fmt.Fprintln(a.streams.Err, a.usage(a.root))
		return nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.initLogger(cfg)

	files := args[1:]
	bins := cfg.Hist.Bins
	if name == "hist" && len(files) > 0 && isDigits(files[0]) {
		bins, err = parseBins(files[0])
		if err != nil {
			return err
		}
		files = files[1:]
	}

	reg := calc.Builtins(calc.Options{
		Stats:     a.selectBackend(ctx, cfg.Stats.Backends),
		Hist:      calc.HistOptions{Bins: bins, MaxWidth: cfg.Hist.MaxWidth, Tick: cfg.Hist.Tick},
		Precision: cfg.Output.Precision,
	})
	cmd, err := reg.Lookup(name)
	if err != nil {
		return err
	}

	a.log.Debug("dispatching", logger.Fields(
		logger.FieldCommand, cmd.Name, "kind", cmd.Kind.String(), "sources", files, "bins", bins))

	numbers := parse.Numbers(source.Lines(files, a.streams.In))
	count := 0
	if a.log.Enabled(zerolog.DebugLevel) {
		numbers = pipeline.Tap(numbers, func(context.Context, float64) error {
			count++
			return nil
		})
	}
	out, err := reg.Process(name, numbers)
	if err != nil {
		return err
	}

	start := time.Now()
	w := bufio.NewWriter(a.streams.Out)
	err = pipeline.ForEach(ctx, out, func(_ context.Context, line string) error {
		_, werr := fmt.Fprintln(w, line)
		return werr
	})
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = errors.New(errors.ErrCodeIO, "cannot write output").WithCause(ferr)
	}

	fields := logger.DurationFields(cmd.Name, time.Since(start))
	fields[logger.FieldCount] = count
	if err != nil {
		a.log.Debug("command failed", logger.MergeWithError(fields, err))
		return err
	}
	a.log.Debug("command finished", fields)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	var loadOpts []config.LoaderOption
	if a.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(a.envFile))
	}
	if a.opts.Environ != nil {
		loadOpts = append(loadOpts, config.WithEnviron(a.opts.Environ))
	}
	if a.opts.FileSystem != nil {
		loadOpts = append(loadOpts, config.WithFileSystem(a.opts.FileSystem))
	}
	if err := config.LoadConfig(ServiceName, cfg, loadOpts...); err != nil {
		return nil, errors.New(errors.ErrCodeIO, "cannot load configuration").WithCause(err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger installs the run's logger globally so package loggers pick up
// the configured level and run_id.
func (a *app) initLogger(cfg *config.Config) {
	w := a.streams.Err
	if cfg.Logging.Output == "stdout" {
		w = a.streams.Out
	}
	base := logger.NewWithWriter(&cfg.Logging, cfg.Name, w).
		WithFields(logger.Fields(logger.FieldRunID, uuid.NewString()))
	logger.SetGlobalLogger(base)
	logger.RegisterDefaults("reader", "stats", "config")
	a.log = base.WithComponent("cli")
}

// selectBackend returns nil when no backend is usable; batch commands then
// report MISSING_DEPENDENCY when they are invoked.
func (a *app) selectBackend(ctx context.Context, names []string) stats.Backend {
	b, err := stats.Select(ctx, names)
	if err != nil {
		a.log.Debug("batch commands disabled", logger.ErrorFields("select_backend", err))
		return nil
	}
	return b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseBins(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidInput("bin_count", fmt.Sprintf("bin count %s is too large", s))
	}
	v := validation.New()
	v.Min("bin_count", n, 1).Max("bin_count", n, 10000)
	if err := v.Validate(); err != nil {
		return 0, err
	}
	return n, nil
}
