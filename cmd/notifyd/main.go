// Command notifyd keeps a marketplace notification stream open and exposes
// it locally.
//
//	notifyd serve   # stream + HTTP bridge for a local UI
//	notifyd watch   # print notifications as JSON lines
//	notifyd token   # show which credential location resolves
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	flags := &Flags{}
	app := &cli.Command{
		Name:    "notifyd",
		Usage:   "Marketplace notification stream client",
		Version: version,
		Flags:   flags.cliFlags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return flags.setup(ctx)
		},
	}

	NewServeCmd(flags).Register(app)
	NewWatchCmd(flags).Register(app)
	NewTokenCmd(flags).Register(app)
	return app
}
