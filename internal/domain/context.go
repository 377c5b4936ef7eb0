package domain

import (
	"strings"
	"time"
)

// CommandContext carries where a chat command came from. Room is the reply
// target (chat id); RoomName is the display name used for filtering.
type CommandContext struct {
	Room        string
	RoomName    string
	Sender      string
	IsGroupChat bool
	Message     string
	Timestamp   time.Time
}

func NewCommandContext(room, roomName, sender, message string, isGroupChat bool) *CommandContext {
	return &CommandContext{
		Room:        room,
		RoomName:    roomName,
		Sender:      sender,
		IsGroupChat: isGroupChat,
		Message:     message,
		Timestamp:   time.Now(),
	}
}

// DefaultName is the sender's name without the open-chat profile suffix,
// e.g. "민수/27/서울" becomes "민수".
func (c *CommandContext) DefaultName() string {
	if c == nil {
		return ""
	}
	name, _, _ := strings.Cut(c.Sender, "/")
	return strings.TrimSpace(name)
}
