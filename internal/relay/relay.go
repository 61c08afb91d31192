// Package relay holds the in-memory message board that the local API server
// uses to pass text between the coach screen and the coachee screen.
package relay

import (
	"sync"
	"time"
)

// Message is one relayed text with a monotonically increasing sequence
type Message struct {
	Seq       int       `json:"seq"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Board is a bounded in-memory message log. Safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	messages []Message
	nextSeq  int
	limit    int
}

// NewBoard creates a board keeping at most limit messages (0 = 500).
func NewBoard(limit int) *Board {
	if limit <= 0 {
		limit = 500
	}
	return &Board{nextSeq: 1, limit: limit}
}

// Post appends a message and returns it with its assigned sequence.
func (b *Board) Post(sender, text string) Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := Message{
		Seq:       b.nextSeq,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	b.nextSeq++
	b.messages = append(b.messages, msg)
	if len(b.messages) > b.limit {
		b.messages = b.messages[len(b.messages)-b.limit:]
	}
	return msg
}

// After returns all messages with a sequence greater than seq, oldest first.
func (b *Board) After(seq int) []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Message
	for _, m := range b.messages {
		if m.Seq > seq {
			out = append(out, m)
		}
	}
	return out
}

// All returns every retained message, oldest first.
func (b *Board) All() []Message {
	return b.After(0)
}

// Clear drops all messages. Sequence numbers keep increasing so pollers
// never see an old sequence again.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
}

// Len returns the number of retained messages.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.messages)
}
