// Package version reports the build version of the calc binary.
//
// Release builds stamp the version with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/streamcalc/version.Version=1.2.0 \
//	    -X github.com/kbukum/streamcalc/version.Commit=$(git rev-parse --short HEAD)" ./cmd/calc
//
// Unstamped builds fall back to the module and VCS data the Go toolchain
// embeds.
package version
