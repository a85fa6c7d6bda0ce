package main

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var input entity.SignIn

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the credential",
		Long: `Sign in with a username (or email) and password.

The credential is persisted to the configured storage and the profile is
fetched right after.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Session.SignIn(ctx, input); err != nil {
					return r.Session.Snapshot(), err
				}
				err := r.Session.FetchProfile(ctx)

				return r.Session.Snapshot(), err
			})
		},
	}
	cmd.Flags().StringVarP(&input.Username, "username", "u", "", "username or email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "password")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Session.SignOut(ctx)

				return r.Session.Snapshot(), err
			})
		},
	}
}

func (a *app) registerCmd() *cobra.Command {
	var input entity.Registration
	var userType string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (does not sign in)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.UserType = entity.UserType(userType)
			if input.Password2 == "" {
				input.Password2 = input.Password
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Session.Register(ctx, input)

				return r.Session.Snapshot(), err
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&input.Username, "username", "", "username")
	flags.StringVar(&input.Email, "email", "", "email address")
	flags.StringVar(&input.Password, "password", "", "password")
	flags.StringVar(&input.Password2, "confirm", "", "password confirmation (defaults to --password)")
	flags.StringVar(&input.FirstName, "first-name", "", "first name")
	flags.StringVar(&input.LastName, "last-name", "", "last name")
	flags.StringVar(&userType, "user-type", "", "buyer, seller or shop")

	return cmd
}

func (a *app) profileCmd() *cobra.Command {
	var set map[string]string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in profile, optionally updating fields first",
		Example: `  storefront profile
  storefront profile --set first_name=Alice --set phone_number=0912345678`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := profileFields(set)
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Session.FetchProfile(ctx); err != nil {
					return r.Session.Snapshot(), err
				}
				if len(fields) > 0 {
					err = r.Session.UpdateProfile(ctx, fields)
				}

				return r.Session.Snapshot(), err
			})
		},
	}
	cmd.Flags().StringToStringVar(&set, "set", nil, "profile field to update, as key=value")

	return cmd
}

func profileFields(set map[string]string) (map[string]any, error) {
	fields := make(map[string]any, len(set))
	for k, v := range set {
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, errors.New("empty profile field name")
		}
		fields[k] = v
	}

	return fields, nil
}
