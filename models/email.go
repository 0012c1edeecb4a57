package models

import "time"

// Dispatch outcomes recorded on an EmailLog. A log is "sent" if at least one
// recipient succeeded and "failed" only if every recipient failed.
const (
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusPending = "pending"
)

// EmailTemplate is a reusable message with {firstName}-style placeholders in
// subject and body.
type EmailTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the EmailTemplate model.
func (t EmailTemplate) TableName() string {
	return "email_templates"
}

// EmailLog is an append-only record of one Send call (not one per recipient).
type EmailLog struct {
	ID         int64      `json:"id"`
	Recipients StringList `json:"to"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Status     string     `json:"status"`
	TemplateID *int64     `json:"templateId,omitempty"`
	Error      string     `json:"error,omitempty"`
	SentAt     time.Time  `json:"sentAt"`
}

// TableName returns the name of the database table
// associated with the EmailLog model.
func (l EmailLog) TableName() string {
	return "email_logs"
}
