package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
)

// emailRepository is the PostgreSQL-backed implementation of
// [EmailRepository]: template CRUD plus the append-only dispatch log.
type emailRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmailRepository constructs an [EmailRepository] backed by the provided
// database connection and logger.
func NewEmailRepository(db *DB, logger *logger.Logger) EmailRepository {
	logger.Debug().Msg("creating email repository")
	return &emailRepository{
		db:     db,
		logger: logger,
	}
}

func scanTemplate(row userScanner) (models.EmailTemplate, error) {
	var t models.EmailTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanEmailLog(row userScanner) (models.EmailLog, error) {
	var l models.EmailLog
	err := row.Scan(&l.ID, &l.Recipients, &l.Subject, &l.Body, &l.Status, &l.TemplateID, &l.Error, &l.SentAt)
	return l, err
}

// CreateTemplate persists a new reusable email template.
func (r *emailRepository) CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTemplate, tpl.Name, tpl.Subject, tpl.Body, tpl.Active)

	created, err := scanTemplate(row)
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.CreateTemplate").Msg("error: scanning error")
		return models.EmailTemplate{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetTemplate retrieves a template by primary key. Returns
// [ErrTemplateNotFound] when no row matches.
func (r *emailRepository) GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	found, err := scanTemplate(r.db.QueryRowContext(ctx, getTemplate, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmailTemplate{}, ErrTemplateNotFound
		}
		log.Err(err).Str("func", "*emailRepository.GetTemplate").Msg("error: scanning error")
		return models.EmailTemplate{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListTemplates returns all templates, newest first.
func (r *emailRepository) ListTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTemplates)
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.ListTemplates").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	templates := make([]models.EmailTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

// UpdateTemplate overwrites a template row and returns the stored result.
// Returns [ErrTemplateNotFound] when the id does not resolve.
func (r *emailRepository) UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateTemplate, tpl.ID, tpl.Name, tpl.Subject, tpl.Body, tpl.Active)

	updated, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmailTemplate{}, ErrTemplateNotFound
		}
		log.Err(err).Str("func", "*emailRepository.UpdateTemplate").Msg("error: scanning error")
		return models.EmailTemplate{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTemplate removes a template row. Logs referencing it keep their
// snapshot; the FK sets their template_id to NULL.
func (r *emailRepository) DeleteTemplate(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTemplate, id)
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.DeleteTemplate").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// AppendLog records one dispatch attempt. The log is append-only; there is no
// update or delete path.
func (r *emailRepository) AppendLog(ctx context.Context, entry models.EmailLog) (models.EmailLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, appendEmailLog,
		entry.Recipients, entry.Subject, entry.Body, entry.Status, entry.TemplateID, entry.Error, entry.SentAt)

	created, err := scanEmailLog(row)
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.AppendLog").Msg("error: scanning error")
		return models.EmailLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListLogs returns dispatch log entries, newest first, capped at limit when
// limit is non-zero.
func (r *emailRepository) ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "recipients", "subject", "body", "status", "template_id", "error", "sent_at").
		From("email_logs").
		OrderBy("sent_at DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.ListLogs").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*emailRepository.ListLogs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logs := make([]models.EmailLog, 0)
	for rows.Next() {
		l, err := scanEmailLog(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, nil
}
