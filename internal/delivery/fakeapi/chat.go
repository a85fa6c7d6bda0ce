package fakeapi

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func (s *Server) listRooms(c echo.Context) error {
	user := currentUser(c)

	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := []entity.ChatRoom{}
	for _, r := range s.db.rooms {
		if slices.Contains(r.participants, user) {
			out = append(out, s.db.room(r))
		}
	}
	slices.SortFunc(out, func(a, b entity.ChatRoom) int { return cmp.Compare(b.ID, a.ID) })

	return c.JSON(http.StatusOK, out)
}

func (s *Server) createRoom(c echo.Context) error {
	var body struct {
		Participant int64 `json:"participant" validate:"required"`
	}
	if handled, err := s.bindValid(c, &body); handled {
		return err
	}

	user := currentUser(c)

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.users[body.Participant]; !ok {
		return invalid(c, map[string][]string{
			"participant": {`Invalid pk "` + strconv.FormatInt(body.Participant, 10) + `" - object does not exist.`},
		})
	}

	participants := []int64{user}
	if body.Participant != user {
		participants = append(participants, body.Participant)
	}
	r := &roomRecord{id: s.db.id(), participants: participants, createdAt: s.db.now()}
	s.db.rooms[r.id] = r

	return c.JSON(http.StatusCreated, s.db.room(r))
}

// memberRoom returns the room when the current user takes part in it. Callers hold mu.
func (s *Server) memberRoom(c echo.Context) (*roomRecord, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	r, ok := s.db.rooms[id]
	if !ok || !slices.Contains(r.participants, currentUser(c)) {
		return nil, false
	}

	return r, true
}

func (s *Server) getRoom(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	r, ok := s.memberRoom(c)
	if !ok {
		return notFound(c, "ChatRoom")
	}

	return c.JSON(http.StatusOK, s.db.room(r))
}

// listMessages returns an empty list for rooms the caller does not belong to,
// like the backend's filtered queryset.
func (s *Server) listMessages(c echo.Context) error {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	r, ok := s.memberRoom(c)
	if !ok {
		return c.JSON(http.StatusOK, []entity.Message{})
	}

	return c.JSON(http.StatusOK, append([]entity.Message{}, s.db.messages[r.id]...))
}

func (s *Server) createMessage(c echo.Context) error {
	var body struct {
		Content string `json:"content" validate:"required"`
	}
	if handled, err := s.bindValid(c, &body); handled {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.memberRoom(c)
	if !ok {
		return notFound(c, "ChatRoom")
	}

	sender := s.db.participant(currentUser(c))
	msg := entity.Message{
		ID:        s.db.id(),
		ChatRoom:  r.id,
		Sender:    &sender,
		Content:   body.Content,
		CreatedAt: s.db.now(),
	}
	s.db.messages[r.id] = append(s.db.messages[r.id], msg)

	return c.JSON(http.StatusCreated, msg)
}

// PostMessage stores a message as if the sender had posted it, for simulating
// traffic from the other side of a conversation.
func (s *Server) PostMessage(roomID, senderID int64, content string) (entity.Message, bool) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.rooms[roomID]
	if !ok || !slices.Contains(r.participants, senderID) {
		return entity.Message{}, false
	}

	sender := s.db.participant(senderID)
	msg := entity.Message{ID: s.db.id(), ChatRoom: roomID, Sender: &sender, Content: content, CreatedAt: s.db.now()}
	s.db.messages[roomID] = append(s.db.messages[roomID], msg)

	return msg, true
}
