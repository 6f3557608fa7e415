package ui

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// Message is a status message with the time it was shown
type Message struct {
	Text      string
	Timestamp time.Time
}

// MessageLogger keeps the last status messages for the :messages command.
// It is used from the event loop only.
type MessageLogger struct {
	messages []Message
	maxSize  int
}

// NewMessageLogger creates a logger that keeps maxSize messages
func NewMessageLogger(maxSize int) *MessageLogger {
	return &MessageLogger{maxSize: maxSize}
}

// Add records text at now. Empty messages are dropped.
func (ml *MessageLogger) Add(text string, now time.Time) {
	if text == "" {
		return
	}
	ml.messages = append(ml.messages, Message{Text: text, Timestamp: now})
	if len(ml.messages) > ml.maxSize {
		ml.messages = ml.messages[len(ml.messages)-ml.maxSize:]
	}
}

// Count returns the number of messages kept
func (ml *MessageLogger) Count() int {
	return len(ml.messages)
}

// Lines renders the messages newest first, each prefixed with its time in
// the strftime layout
func (ml *MessageLogger) Lines(layout string) []string {
	if layout == "" {
		layout = "%H:%M:%S"
	}
	out := make([]string, 0, len(ml.messages))
	for i := len(ml.messages) - 1; i >= 0; i-- {
		m := ml.messages[i]
		out = append(out, strftime.Format(layout, m.Timestamp)+"  "+m.Text)
	}
	return out
}
