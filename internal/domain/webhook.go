package domain

import (
	"strings"
	"time"
)

const (
	TopicOrders = "orders_v2"
	TopicItems  = "items"
)

type WebhookStatus string

const (
	WebhookStatusProcessed WebhookStatus = "processed"
	WebhookStatusError     WebhookStatus = "error"
	WebhookStatusSkipped   WebhookStatus = "skipped"
)

// Notification é o payload enviado pelo marketplace
type Notification struct {
	ID            string     `json:"_id,omitempty"`
	Topic         string     `json:"topic"`
	Resource      string     `json:"resource"`
	UserID        int64      `json:"user_id"`
	ApplicationID int64      `json:"application_id"`
	Attempts      int        `json:"attempts,omitempty"`
	Sent          *time.Time `json:"sent,omitempty"`
	Received      *time.Time `json:"received,omitempty"`
}

// ResourceID extrai o identificador final do resource ("/orders/123" -> "123")
func (n Notification) ResourceID() string {
	resource := strings.TrimRight(strings.TrimSpace(n.Resource), "/")
	if idx := strings.LastIndex(resource, "/"); idx >= 0 {
		resource = resource[idx+1:]
	}
	if idx := strings.Index(resource, "?"); idx >= 0 {
		resource = resource[:idx]
	}
	return resource
}

type WebhookEvent struct {
	Resource    string        `json:"resource"`
	Topic       string        `json:"topic"`
	UserID      int64         `json:"user_id"`
	Status      WebhookStatus `json:"status"`
	Error       *string       `json:"error"`
	Attempts    int           `json:"attempts"`
	ProcessedAt time.Time     `json:"processed_at"`
}
