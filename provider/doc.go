// Package provider is a small generic framework for swappable backends.
//
// A Registry holds named factories; a Selector picks the first usable
// instance from those that were created. The calculator uses it to choose
// the statistics backend behind median, hist and summary: backends are
// registered by name, created in the configured priority order, and the
// first one reporting IsAvailable wins.
//
// # Usage
//
//	reg := provider.NewRegistry[stats.Backend]()
//	reg.RegisterFactory("moremath", newMoremath)
//	b, err := reg.Create("moremath", nil)
package provider
