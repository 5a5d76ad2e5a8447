package dto

import (
	"github.com/pattarin/banchi/internal/adapter/chat"
)

// WebhookRequest is one inbound chat message forwarded by the transport
// bridge. sender_name is optional display text, never an identity.
type WebhookRequest struct {
	GroupID    string `json:"group_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	Text       string `json:"text"`
}

// ToMessage converts to the dispatcher's message type.
func (r *WebhookRequest) ToMessage() chat.Message {
	return chat.Message{
		GroupID:    r.GroupID,
		SenderID:   r.SenderID,
		SenderName: r.SenderName,
		Text:       r.Text,
	}
}
