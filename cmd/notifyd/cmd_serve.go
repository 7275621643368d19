package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/notifystream/pkg/api"
	"github.com/dmitrymomot/notifystream/pkg/httpserver"
	"github.com/dmitrymomot/notifystream/pkg/logger"
)

type ServeCmd struct {
	flags *Flags
}

func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "serve",
		Usage: "Run the notification stream and the local HTTP bridge",
		Description: `Connects to the marketplace notification stream and serves the history
on NOTIFY_HTTP_ADDR. A datastar page can bind to GET /notifications/feed.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	d, err := newDeps(ctx, cmd.flags)
	if err != nil {
		return err
	}
	defer d.Close()

	log := cmd.flags.Logger.With(logger.Component("notifyd"))
	reqLog := newRequestLogger(c.Root().ErrWriter, cmd.flags.Env)

	client := d.newClient(cmd.flags)
	defer client.Close()

	client.Start(ctx)
	logStartup(ctx, log, client)

	router := api.NewRouter(client,
		api.WithLogger(reqLog),
		api.WithReadinessChecks(d.readinessChecks()...),
	)

	srv := httpserver.NewFromConfig(cmd.flags.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(client.Stop),
	)
	return srv.Run(ctx, router)
}

// newRequestLogger logs API requests with the environment attributes and the
// chi request id.
func newRequestLogger(w io.Writer, env string) *slog.Logger {
	return logger.New(
		logger.WithOutput(w),
		logger.WithEnvironment(env, "notifyd"),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
}
