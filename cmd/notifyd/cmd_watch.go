package main

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/notifystream/pkg/inbox"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
)

type WatchCmd struct {
	flags *Flags
}

func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Print notifications as JSON lines until interrupted",
		UsageText: "notifyd watch",
		Action:    cmd.run,
	})
	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	d, err := newDeps(ctx, cmd.flags)
	if err != nil {
		return err
	}
	defer d.Close()

	log := cmd.flags.Logger.With(logger.Component("notifyd"))
	enc := json.NewEncoder(c.Root().Writer)

	client := d.newClient(cmd.flags, notifier.WithOnNotification(func(n inbox.Notification) {
		if err := enc.Encode(n); err != nil {
			log.ErrorContext(ctx, "write notification", logger.NotificationID(n.ID), logger.Error(err))
		}
	}))
	defer client.Close()

	client.Start(ctx)
	logStartup(ctx, log, client)
	if !client.CanConnect() {
		return cli.Exit("no credential found", 1)
	}

	<-ctx.Done()
	return nil
}
