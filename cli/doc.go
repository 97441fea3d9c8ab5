// Package cli implements the calc command line: flag parsing with cobra,
// configuration and logger bootstrap, command dispatch and error reporting.
//
// The process entry point is a thin wrapper:
//
//	os.Exit(cli.Execute(ctx, os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
package cli
