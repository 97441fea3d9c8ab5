package provider

import (
	"context"
	"strings"
	"testing"
)

// testProvider implements the Provider interface for testing.
type testProvider struct {
	name      string
	available bool
}

func (p *testProvider) Name() string                        { return p.name }
func (p *testProvider) IsAvailable(ctx context.Context) bool { return p.available }

func TestRegistryRegisterAndCreate(t *testing.T) {
	reg := NewRegistry[*testProvider]()
	reg.RegisterFactory("test", func(cfg map[string]any) (*testProvider, error) {
		return &testProvider{name: "test", available: true}, nil
	})

	if !reg.Has("test") {
		t.Fatal("expected factory to be registered")
	}
	p, err := reg.Create("test", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Name() != "test" {
		t.Errorf("expected name 'test', got %q", p.Name())
	}
}

func TestRegistryCreateUnregistered(t *testing.T) {
	reg := NewRegistry[*testProvider]()
	_, err := reg.Create("missing", nil)
	if err == nil {
		t.Fatal("expected error for unregistered factory")
	}
	if !strings.Contains(err.Error(), "not registered") {
		t.Errorf("expected 'not registered' in error, got %q", err.Error())
	}
}

func TestRegistryOverwrite(t *testing.T) {
	reg := NewRegistry[*testProvider]()
	reg.RegisterFactory("x", func(map[string]any) (*testProvider, error) { return &testProvider{name: "first"}, nil })
	reg.RegisterFactory("x", func(map[string]any) (*testProvider, error) { return &testProvider{name: "second"}, nil })
	p, _ := reg.Create("x", nil)
	if p.Name() != "second" {
		t.Errorf("expected later registration to win, got %q", p.Name())
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry[*testProvider]()
	reg.RegisterFactory("beta", func(cfg map[string]any) (*testProvider, error) {
		return &testProvider{name: "beta"}, nil
	})
	reg.RegisterFactory("alpha", func(cfg map[string]any) (*testProvider, error) {
		return &testProvider{name: "alpha"}, nil
	})

	names := reg.List()
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected sorted [alpha, beta], got %v", names)
	}
}

func TestPrioritySelector(t *testing.T) {
	providers := map[string]*testProvider{
		"a": {name: "a", available: false},
		"b": {name: "b", available: true},
		"c": {name: "c", available: true},
	}
	sel := &PrioritySelector[*testProvider]{Priority: []string{"a", "c", "b"}}
	p, err := sel.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if p.Name() != "c" {
		t.Errorf("expected 'c', got %q", p.Name())
	}
}

func TestPrioritySelectorNoneAvailable(t *testing.T) {
	providers := map[string]*testProvider{"a": {name: "a"}}
	sel := &PrioritySelector[*testProvider]{Priority: []string{"a", "missing"}}
	if _, err := sel.Select(context.Background(), providers); err == nil {
		t.Fatal("expected error when nothing is available")
	}
}
