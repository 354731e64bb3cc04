package quotation

import (
	"time"

	"gin-jewelry-b2b/internal/domain/user"

	"github.com/google/uuid"
)

// Message is an append-only thread entry. It is never edited or deleted.
type Message struct {
	id          int64
	quotationID int64
	senderID    uuid.UUID
	senderRole  user.Role
	body        MessageBody
	createdAt   time.Time
}

// NewMessage lets the owning customer or any admin post on q.
func NewMessage(q *Quotation, sender user.Actor, body string, now time.Time) (*Message, error) {
	if err := user.Authorize(sender, user.CapViewOwned, q); err != nil {
		return nil, err
	}
	b, err := NewMessageBody(body)
	if err != nil {
		return nil, err
	}
	return &Message{
		quotationID: q.ID(),
		senderID:    sender.ID,
		senderRole:  sender.Role,
		body:        b,
		createdAt:   now,
	}, nil
}

func (m *Message) ID() int64             { return m.id }
func (m *Message) QuotationID() int64    { return m.quotationID }
func (m *Message) SenderID() uuid.UUID   { return m.senderID }
func (m *Message) SenderRole() user.Role { return m.senderRole }
func (m *Message) Body() string          { return m.body.String() }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }

func ReconstructMessage(id, quotationID int64, senderID uuid.UUID, senderRole user.Role, body string, createdAt time.Time) *Message {
	return &Message{
		id:          id,
		quotationID: quotationID,
		senderID:    senderID,
		senderRole:  senderRole,
		body:        MessageBody{text: body},
		createdAt:   createdAt,
	}
}
