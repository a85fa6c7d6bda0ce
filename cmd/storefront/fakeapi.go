package main

import (
	"context"

	"storefront/config"
	"storefront/internal/delivery/fakeapi"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

func (a *app) fakeAPICmd() *cobra.Command {
	var port int
	var empty bool

	cmd := &cobra.Command{
		Use:   "fake-api",
		Short: "Serve an in-memory storefront API for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			opts := fakeapi.Options{}
			if !empty {
				opts.Seed = fakeapi.DefaultSeed()
			}

			var server *fakeapi.Server
			fxApp := fx.New(
				a.fxOptions(ctx),
				fx.Decorate(func(cfg *config.Config) *config.Config {
					if cmd.Flags().Changed("port") {
						cfg.FakeAPI.Port = port
					}

					return cfg
				}),
				fx.Provide(
					auth.NewJWTService,
					func() service.PasswordHasher { return auth.NewBcryptHasher(bcrypt.DefaultCost) },
					fakeapi.NewServer,
				),
				fx.Supply(opts),
				fx.Populate(&server),
			)
			if err := fxApp.Start(ctx); err != nil {
				return errors.Wrap(err, "failed to start fake api")
			}

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- server.Serve(ctx)
			}()

			var err error
			select {
			case <-ctx.Done():
			case err = <-serveErr:
			}

			if stopErr := fxApp.Stop(context.Background()); stopErr != nil && err == nil {
				err = stopErr
			}

			return err
		},
	}
	cmd.Flags().IntVar(&port, "port", 8000, "port to listen on")
	cmd.Flags().BoolVar(&empty, "empty", false, "start without seed data")

	return cmd
}
