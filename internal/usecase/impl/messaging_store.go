package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type messagingStore struct {
	*baseStore[usecase.MessagingState]

	api    service.MessagingAPI
	holder usecase.CredentialHolder
}

// NewMessagingStore creates the chat store.
func NewMessagingStore(
	api service.MessagingAPI,
	holder usecase.CredentialHolder,
	opts StoreOptions,
	logger *slog.Logger,
) usecase.MessagingStore {
	return &messagingStore{
		baseStore: newBaseStore("messaging", usecase.MessagingState{}, cloneMessagingState, opts.DiscardStaleResults, logger),
		api:       api,
		holder:    holder,
	}
}

func roomKey(r entity.ChatRoom) int64 { return r.ID }

func messageKey(m entity.Message) int64 { return m.ID }

func (s *messagingStore) ListRooms(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListRooms, true, "Failed to fetch chat rooms",
		func(ctx context.Context) ([]entity.ChatRoom, error) {
			return s.api.ListRooms(ctx, accessToken(s.holder))
		},
		func(state *usecase.MessagingState, rooms []entity.ChatRoom) {
			state.Rooms = rooms
		},
	)
}

func (s *messagingStore) GetRoomByID(ctx context.Context, id int64) error {
	return run(ctx, s.baseStore, usecase.OpGetRoomByID, true, "Failed to fetch chat room",
		func(ctx context.Context) (*entity.ChatRoom, error) {
			return s.api.GetRoom(ctx, accessToken(s.holder), id)
		},
		func(state *usecase.MessagingState, room *entity.ChatRoom) {
			setCurrentRoom(state, room)
		},
	)
}

func (s *messagingStore) CreateRoom(ctx context.Context, participantID int64) error {
	return run(ctx, s.baseStore, usecase.OpCreateRoom, false, "Failed to create chat room",
		func(ctx context.Context) (*entity.ChatRoom, error) {
			return s.api.CreateRoom(ctx, accessToken(s.holder), participantID)
		},
		func(state *usecase.MessagingState, room *entity.ChatRoom) {
			state.Rooms = prepend(state.Rooms, *room, roomKey)
			setCurrentRoom(state, room)
		},
	)
}

func (s *messagingStore) ListMessages(ctx context.Context, roomID int64) error {
	return run(ctx, s.baseStore, usecase.OpListMessages, true, "Failed to fetch messages",
		func(ctx context.Context) ([]entity.Message, error) {
			return s.api.ListMessages(ctx, accessToken(s.holder), roomID)
		},
		func(state *usecase.MessagingState, messages []entity.Message) {
			state.Messages = messages
		},
	)
}

func (s *messagingStore) SendMessage(ctx context.Context, roomID int64, content string) error {
	return run(ctx, s.baseStore, usecase.OpSendMessage, false, "Failed to send message",
		func(ctx context.Context) (*entity.Message, error) {
			if strings.TrimSpace(content) == "" {
				return nil, domainerrors.NewValidationError(0, "", map[string][]string{
					"content": {"This field may not be blank."},
				})
			}

			return s.api.SendMessage(ctx, accessToken(s.holder), roomID, content)
		},
		func(state *usecase.MessagingState, msg *entity.Message) {
			state.Messages = appendUnique(state.Messages, *msg, messageKey)
			touchRoom(state, *msg)
		},
	)
}

// AppendIncomingMessage ignores messages of a room other than the open one;
// they only refresh that room's last message.
func (s *messagingStore) AppendIncomingMessage(msg entity.Message) {
	s.update(func(state *usecase.MessagingState) {
		touchRoom(state, msg)
		if state.CurrentRoom != nil && msg.ChatRoom != 0 && msg.ChatRoom != state.CurrentRoom.ID {
			return
		}
		state.Messages = appendUnique(state.Messages, msg, messageKey)
	})
}

func (s *messagingStore) ClearCurrentRoom() {
	s.update(func(state *usecase.MessagingState) {
		state.CurrentRoom = nil
		state.Messages = nil
	})
}

// setCurrentRoom drops the messages of the previous room so room and messages
// never disagree.
func setCurrentRoom(state *usecase.MessagingState, room *entity.ChatRoom) {
	if state.CurrentRoom == nil || state.CurrentRoom.ID != room.ID {
		state.Messages = nil
	}
	state.CurrentRoom = room
}

func touchRoom(state *usecase.MessagingState, msg entity.Message) {
	for i := range state.Rooms {
		if state.Rooms[i].ID == msg.ChatRoom {
			rooms := slices.Clone(state.Rooms)
			m := msg
			rooms[i].LastMessage = &m
			state.Rooms = rooms

			return
		}
	}
}
