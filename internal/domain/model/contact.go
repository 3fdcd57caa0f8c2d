package model

import (
	"strings"
	"time"
)

// ContactForm is the free-text payload of the contact form.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Normalize returns a copy with surrounding whitespace trimmed from every field.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// ContactReceipt is returned by a mail-delivery collaborator once it has
// accepted a submission.
type ContactReceipt struct {
	ID         string
	AcceptedAt time.Time
}
