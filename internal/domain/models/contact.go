// internal/domain/models/contact.go
package models

import (
	"strings"
	"time"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	Role         string     `json:"role"`
	Message      string     `json:"message"`
	Replied      bool       `json:"replied"`
	RepliedBy    string     `json:"repliedBy,omitempty"`
	ReplyMessage string     `json:"replyMessage,omitempty"`
	ReplyOn      *time.Time `json:"replyOn,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ContactReply is sent to the backend to answer a contact message.
type ContactReply struct {
	ContactID    string `json:"contactId"`
	ReplyMessage string `json:"replyMessage"`
}
