package main

import (
	"context"
	"strings"

	"storefront/internal/usecase/impl"

	"github.com/spf13/cobra"
)

func (a *app) roomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List or open chat rooms",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your chat rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Messaging.ListRooms(ctx)

				return r.Messaging.Snapshot(), err
			})
		},
	}

	open := &cobra.Command{
		Use:   "open USER_ID",
		Short: "Start a chat room with another user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			participant, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Messaging.CreateRoom(ctx, participant)

				return r.Messaging.Snapshot(), err
			})
		},
	}

	cmd.AddCommand(list, open)

	return cmd
}

func (a *app) messagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "messages ROOM_ID",
		Short: "Show a chat room and its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Messaging.GetRoomByID(ctx, roomID); err != nil {
					return r.Messaging.Snapshot(), err
				}
				err := r.Messaging.ListMessages(ctx, roomID)

				return r.Messaging.Snapshot(), err
			})
		},
	}
}

func (a *app) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send ROOM_ID MESSAGE...",
		Short: "Send a message to a chat room",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			content := strings.Join(args[1:], " ")

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Messaging.ListMessages(ctx, roomID); err != nil {
					return r.Messaging.Snapshot(), err
				}
				err := r.Messaging.SendMessage(ctx, roomID, content)

				return r.Messaging.Snapshot(), err
			})
		},
	}
}
