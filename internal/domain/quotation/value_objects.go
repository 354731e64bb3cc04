package quotation

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxQuantity      = 10000
	MaxNotesLength   = 2000
	MaxMessageLength = 4000
)

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 || v > MaxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Int() int { return q.value }

type Notes struct {
	text string
}

func NewNotes(s string) (Notes, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{text: t}, nil
}

func (n Notes) String() string { return n.text }
func (n Notes) IsEmpty() bool  { return n.text == "" }

type MessageBody struct {
	text string
}

func NewMessageBody(s string) (MessageBody, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return MessageBody{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return MessageBody{}, ErrMessageTooLong
	}
	return MessageBody{text: t}, nil
}

func (m MessageBody) String() string { return m.text }
