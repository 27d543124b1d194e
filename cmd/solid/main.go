// Command solid lists and runs the SOLID example programs.
//
//	solid list
//	solid run ocp02 dip06
//	solid run --all --config solid.yaml
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sghaida/solid/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
