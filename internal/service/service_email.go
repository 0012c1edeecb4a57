package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heavymart/backend/internal/adapter"
	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
)

// emailService is the concrete implementation of EmailService. Dispatch is
// per-recipient through the Mailer; the aggregate outcome of one Send call is
// recorded as exactly one append-only log row.
type emailService struct {
	repo   store.EmailRepository
	users  store.UserRepository
	mailer adapter.Mailer

	// from is stamped on every outbound message.
	from string

	logger *logger.Logger
}

// NewEmailService constructs an EmailService wired to the given repositories
// and outbound mailer.
func NewEmailService(repo store.EmailRepository, users store.UserRepository, mailer adapter.Mailer, cfg config.Mail, logger *logger.Logger) EmailService {
	return &emailService{
		repo:   repo,
		users:  users,
		mailer: mailer,
		from:   cfg.From,
		logger: logger,
	}
}

// CreateTemplate validates and persists a reusable message template.
func (e *emailService) CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	if tpl.Name == "" || tpl.Subject == "" || tpl.Body == "" {
		return models.EmailTemplate{}, ErrMissingFields
	}

	created, err := e.repo.CreateTemplate(ctx, tpl)
	if err != nil {
		log.Err(err).Str("name", tpl.Name).Msg("template creation ended with error")
		return models.EmailTemplate{}, fmt.Errorf("template creation ended with error: %w", err)
	}

	return created, nil
}

// GetTemplate returns one template by id.
func (e *emailService) GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error) {
	tpl, err := e.repo.GetTemplate(ctx, id)
	if err != nil {
		return models.EmailTemplate{}, fmt.Errorf("template lookup ended with error: %w", err)
	}

	return tpl, nil
}

// ListTemplates returns all templates, newest first.
func (e *emailService) ListTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	templates, err := e.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("template listing ended with error: %w", err)
	}

	return templates, nil
}

// UpdateTemplate rewrites a template.
func (e *emailService) UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	updated, err := e.repo.UpdateTemplate(ctx, tpl)
	if err != nil {
		log.Err(err).Int64("id", tpl.ID).Msg("template update ended with error")
		return models.EmailTemplate{}, fmt.Errorf("template update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTemplate removes a template. Existing log rows keep their message
// snapshot.
func (e *emailService) DeleteTemplate(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := e.repo.DeleteTemplate(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("template deletion ended with error")
		return fmt.Errorf("template deletion ended with error: %w", err)
	}

	return nil
}

// Send dispatches one message to the union of registered users (resolved by
// id, inactive accounts skipped) and raw custom addresses.
//
// When TemplateID is set, the stored template's subject and body seed the
// message; explicit subject/body in the input win over the template.
// Registered recipients get {firstName}, {lastName}, {email} and {company}
// substituted independently in subject and body; custom addresses receive
// the text verbatim.
//
// Exactly one log row is appended per call: status "sent" if at least one
// recipient succeeded, "failed" only if all failed, with per-recipient
// failures aggregated into the error column.
//
// Returns the stored log row or:
//   - ErrNoRecipients if the recipient union is empty.
//   - ErrMissingContent if subject or body is empty after template resolution.
func (e *emailService) Send(ctx context.Context, input SendInput) (models.EmailLog, error) {
	log := logger.FromContext(ctx)

	subject, body := input.Subject, input.Body
	if input.TemplateID != nil {
		tpl, err := e.repo.GetTemplate(ctx, *input.TemplateID)
		if err != nil {
			return models.EmailLog{}, fmt.Errorf("template lookup ended with error: %w", err)
		}
		if subject == "" {
			subject = tpl.Subject
		}
		if body == "" {
			body = tpl.Body
		}
	}
	if subject == "" || body == "" {
		return models.EmailLog{}, ErrMissingContent
	}

	var users []models.User
	if len(input.UserIDs) > 0 {
		found, err := e.users.FindUsersByIDs(ctx, input.UserIDs)
		if err != nil {
			log.Err(err).Msg("recipient resolution ended with error")
			return models.EmailLog{}, fmt.Errorf("recipient resolution ended with error: %w", err)
		}
		users = found
	}

	if len(users)+len(input.CustomEmails) == 0 {
		return models.EmailLog{}, ErrNoRecipients
	}

	recipients := make(models.StringList, 0, len(users)+len(input.CustomEmails))
	var failures []string
	succeeded := 0

	for _, user := range users {
		recipients = append(recipients, user.Email)
		msg := adapter.Message{
			To:      user.Email,
			From:    e.from,
			Subject: personalize(subject, user),
			Body:    personalize(body, user),
		}
		if err := e.mailer.Send(ctx, msg); err != nil {
			log.Err(err).Str("to", user.Email).Msg("recipient dispatch failed")
			failures = append(failures, fmt.Sprintf("%s: %v", user.Email, err))
			continue
		}
		succeeded++
	}

	for _, email := range input.CustomEmails {
		recipients = append(recipients, email)
		msg := adapter.Message{To: email, From: e.from, Subject: subject, Body: body}
		if err := e.mailer.Send(ctx, msg); err != nil {
			log.Err(err).Str("to", email).Msg("recipient dispatch failed")
			failures = append(failures, fmt.Sprintf("%s: %v", email, err))
			continue
		}
		succeeded++
	}

	status := models.EmailStatusSent
	if succeeded == 0 {
		status = models.EmailStatusFailed
	}

	entry, err := e.repo.AppendLog(ctx, models.EmailLog{
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
		Status:     status,
		TemplateID: input.TemplateID,
		Error:      strings.Join(failures, "; "),
		SentAt:     time.Now(),
	})
	if err != nil {
		log.Err(err).Msg("dispatch log append ended with error")
		return models.EmailLog{}, fmt.Errorf("dispatch log append ended with error: %w", err)
	}

	return entry, nil
}

// ListLogs returns dispatch history, newest first, capped at limit when
// non-zero.
func (e *emailService) ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error) {
	logs, err := e.repo.ListLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("dispatch log listing ended with error: %w", err)
	}

	return logs, nil
}

// personalize substitutes the per-user placeholders in one text.
func personalize(text string, user models.User) string {
	replacer := strings.NewReplacer(
		"{firstName}", user.FirstName,
		"{lastName}", user.LastName,
		"{email}", user.Email,
		"{company}", user.Company,
	)
	return replacer.Replace(text)
}
