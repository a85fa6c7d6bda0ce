package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// MessagingState is the chat slice. Messages belong to CurrentRoom and are
// ordered oldest first.
type MessagingState struct {
	Rooms       []entity.ChatRoom `json:"chatRooms"`
	CurrentRoom *entity.ChatRoom  `json:"currentChatRoom"`
	Messages    []entity.Message  `json:"messages"`
}

// MessagingStore holds chat rooms and the messages of the open room.
type MessagingStore interface {
	Observable[MessagingState]

	ListRooms(ctx context.Context) error
	GetRoomByID(ctx context.Context, id int64) error
	// CreateRoom prepends the room to Rooms and makes it current.
	CreateRoom(ctx context.Context, participantID int64) error
	// ListMessages replaces Messages wholesale.
	ListMessages(ctx context.Context, roomID int64) error
	// SendMessage appends the stored message to Messages.
	SendMessage(ctx context.Context, roomID int64, content string) error
	// AppendIncomingMessage appends a message received outside the request
	// cycle. A message whose id is already present is ignored.
	AppendIncomingMessage(msg entity.Message)
	// ClearCurrentRoom resets CurrentRoom and Messages together.
	ClearCurrentRoom()
}
