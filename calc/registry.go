package calc

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/logger"
	"github.com/kbukum/streamcalc/pipeline"
)

// Registry maps command names to commands and tracks which capabilities
// this process can offer them. It is filled once at startup and only read
// afterwards.
type Registry struct {
	commands map[string]Command
	provided map[Capability]bool
	format   Formatter
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry. Commands registered without a
// Formatter use defaultFormat; nil means NumberFormatter(0).
func NewRegistry(defaultFormat Formatter) *Registry {
	if defaultFormat == nil {
		defaultFormat = NumberFormatter(0)
	}
	return &Registry{
		commands: make(map[string]Command),
		provided: make(map[Capability]bool),
		format:   defaultFormat,
	}
}

// Register adds cmd, silently replacing any command with the same name.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Format == nil {
		cmd.Format = r.format
	}
	if _, exists := r.commands[cmd.Name]; exists {
		logger.Debug("Command replaced", map[string]interface{}{logger.FieldCommand: cmd.Name})
	}
	r.commands[cmd.Name] = cmd
}

// Lookup returns the named command, or an UNKNOWN_COMMAND error.
func (r *Registry) Lookup(name string) (Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	if !ok {
		return Command{}, errors.UnknownCommand(name)
	}
	return cmd, nil
}

// List returns every command sorted by name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.commands))
	for name, cmd := range r.commands {
		entries = append(entries, Entry{Name: name, Help: cmd.Help})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Usage renders the command listing, one "\t<name>\t<help>" line per command.
func (r *Registry) Usage() string {
	entries := r.List()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = "\t" + e.Name + "\t" + e.Help
	}
	return strings.Join(lines, "\n")
}

// Provide marks a capability as available.
func (r *Registry) Provide(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.provided[c] = true
}

// Available reports whether a capability was provided.
func (r *Registry) Available(c Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.provided[c]
}

// Process wires the named command onto in and returns its formatted
// output. Nothing is read from in until the returned pipeline is pulled.
// Unknown commands and missing capabilities fail here, before any input is
// touched.
func (r *Registry) Process(name string, in *pipeline.Pipeline[float64]) (*pipeline.Pipeline[string], error) {
	cmd, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if cmd.Requires != "" && !r.Available(cmd.Requires) {
		return nil, errors.MissingDependency(string(cmd.Requires), name)
	}

	var results *pipeline.Pipeline[Result]
	if cmd.Transform != nil {
		results = cmd.Transform(in)
	} else {
		results = pipeline.Map(in, func(_ context.Context, x float64) (Result, error) {
			return Scalar(x), nil
		})
	}
	format := cmd.Format
	return pipeline.Map(results, func(_ context.Context, res Result) (string, error) {
		return format(res)
	}), nil
}
