// Command calc is a command-line calculator over streams of numbers.
//
//	$ seq 100 | calc mean
//	50.5
//	$ calc hist 20 data.txt.gz
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/streamcalc/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}
