package transport

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type messagingAPI struct {
	client *Client
}

// NewMessagingAPI creates the /chat endpoints client
func NewMessagingAPI(client *Client) service.MessagingAPI {
	return &messagingAPI{client: client}
}

func (a *messagingAPI) ListRooms(ctx context.Context, accessToken string) ([]entity.ChatRoom, error) {
	return getList[entity.ChatRoom](ctx, a.client, call{method: http.MethodGet, path: "/chat/rooms/", accessToken: accessToken})
}

func (a *messagingAPI) GetRoom(ctx context.Context, accessToken string, id int64) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := a.client.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/chat/rooms/%d/", id), accessToken: accessToken}, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

func (a *messagingAPI) CreateRoom(ctx context.Context, accessToken string, participantID int64) (*entity.ChatRoom, error) {
	cl, err := jsonCall(http.MethodPost, "/chat/rooms/", accessToken, map[string]int64{"participant": participantID})
	if err != nil {
		return nil, err
	}

	var room entity.ChatRoom
	if err := a.client.do(ctx, cl, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

func (a *messagingAPI) ListMessages(ctx context.Context, accessToken string, roomID int64) ([]entity.Message, error) {
	return getList[entity.Message](ctx, a.client, call{method: http.MethodGet, path: fmt.Sprintf("/chat/rooms/%d/messages/", roomID), accessToken: accessToken})
}

func (a *messagingAPI) SendMessage(ctx context.Context, accessToken string, roomID int64, content string) (*entity.Message, error) {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("/chat/rooms/%d/messages/create/", roomID), accessToken, map[string]string{"content": content})
	if err != nil {
		return nil, err
	}

	var msg entity.Message
	if err := a.client.do(ctx, cl, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}
