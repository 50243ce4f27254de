package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

type SupportTicket struct {
	ID        string       `json:"id" bson:"_id"`
	CreatedAt time.Time    `json:"createdAt" bson:"created_at"`
	Status    TicketStatus `json:"status" bson:"status"`
	Name      string       `json:"name" bson:"name" validate:"required"`
	Email     string       `json:"email" bson:"email" validate:"required,email"`
	Phone     string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Topic     string       `json:"topic" bson:"topic" validate:"required"`
	OrderID   string       `json:"orderId,omitempty" bson:"order_id,omitempty"`
	Message   string       `json:"message" bson:"message" validate:"required"`
	Notes     string       `json:"notes" bson:"notes"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updated_at"`
}

type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusArchived MessageStatus = "archived"
)

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        string        `json:"id" bson:"_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	Name      string        `json:"name" bson:"name" validate:"required"`
	Email     string        `json:"email" bson:"email" validate:"required,email"`
	Subject   string        `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string        `json:"message" bson:"message" validate:"required"`
	Status    MessageStatus `json:"status" bson:"status"`
}
