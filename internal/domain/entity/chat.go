package entity

import "time"

// Participant is the public view of a user inside a chat.
type Participant struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// ChatRoom is a conversation between participants.
type ChatRoom struct {
	ID           int64         `json:"id"`
	Participants []Participant `json:"participants"`
	LastMessage  *Message      `json:"last_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at,omitzero"`
}

// Message is a single chat message. Messages of a room are ordered oldest-first.
type Message struct {
	ID        int64        `json:"id"`
	ChatRoom  int64        `json:"chat_room"`
	Sender    *Participant `json:"sender,omitempty"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at,omitzero"`
}
