// Package adapter holds outbound integrations. The only one today is the
// mail provider behind the Mailer interface.
package adapter

import "context"

// Message is one fully personalised outbound email for a single recipient.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer delivers one message to one recipient. Implementations report a
// per-recipient error; the email service aggregates outcomes into the
// dispatch log.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
