package domain

import "time"

// ContactSubmission is an accepted contact form payload.
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Service    string    `json:"service,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}
