package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/notifystream/pkg/credential"
)

type TokenCmd struct {
	flags *Flags
}

func NewTokenCmd(flags *Flags) *TokenCmd {
	return &TokenCmd{flags: flags}
}

func (cmd *TokenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "token",
		Usage:     "Report where the stream credential would be read from",
		UsageText: "notifyd token",
		Description: `Runs the credential lookup without connecting. The token itself is
never printed.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *TokenCmd) run(ctx context.Context, c *cli.Command) error {
	d, err := newDeps(ctx, cmd.flags)
	if err != nil {
		return err
	}
	defer d.Close()

	var explicit credential.TokenSource
	if cmd.flags.Notify.Token != "" {
		explicit = credential.StaticToken(cmd.flags.Notify.Token)
	}

	res, ok := d.resolver.Describe(ctx, explicit)
	if !ok {
		return cli.Exit("no credential found", 1)
	}

	_, err = fmt.Fprintf(c.Root().Writer, "credential resolved from %s (%d characters)\n", res, len(res.Token))
	return err
}
