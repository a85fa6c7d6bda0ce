package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/transport"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		loadConfig: config.New,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds what every command shares. Tests swap the config loader and the
// output streams.
type app struct {
	loadConfig func() (*config.Config, error)
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Drive the storefront stores from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.registerCmd(),
		a.profileCmd(),
		a.productsCmd(),
		a.shopsCmd(),
		a.roomsCmd(),
		a.messagesCmd(),
		a.sendCmd(),
		a.bootstrapCmd(),
		a.fakeAPICmd(),
	)

	return root
}

// fxOptions assembles config, logger and storage shared by every command.
func (a *app) fxOptions(ctx context.Context) fx.Option {
	return fx.Options(
		fx.Provide(
			a.loadConfig,
			func() context.Context { return ctx },
			fx.Annotate(
				func() io.Writer { return a.stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
			logs.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger}
			l.UseLogLevel(slog.LevelDebug)

			return l
		}),
	)
}

// withRegistry builds the store graph, runs fn and prints the value it
// returns. The stores' error, if any, becomes the command's error.
func (a *app) withRegistry(cmd *cobra.Command, fn func(ctx context.Context, r *impl.Registry) (any, error)) error {
	ctx := cmd.Context()

	var registry *impl.Registry
	fxApp := fx.New(
		a.fxOptions(ctx),
		persistence.Module,
		transport.Module,
		impl.Module,
		fx.Populate(&registry),
	)
	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
	}()

	out, opErr := fn(ctx, registry)
	if out != nil {
		if err := a.print(out); err != nil {
			return err
		}
	}
	if opErr != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", opErr)

		return opErr
	}

	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
