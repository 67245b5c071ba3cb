package repository

import (
	"context"
	"database/sql"
	"time"

	"football-championship/internal/domain"

	"github.com/sirupsen/logrus"
)

// AuditFailureCounter считает неудачные записи аудита.
type AuditFailureCounter interface {
	Inc()
}

// AuditRepository пишет журнал аудита в PostgreSQL. Запись идет через пул,
// вне транзакции вызывающего, поэтому откат операции журнал не трогает.
type AuditRepository struct {
	db          *sql.DB
	logger      *logrus.Logger
	performedBy string
	failures    AuditFailureCounter
}

// NewAuditRepository создает новый экземпляр AuditRepository.
func NewAuditRepository(db *sql.DB, logger *logrus.Logger, performedBy string, failures AuditFailureCounter) *AuditRepository {
	return &AuditRepository{
		db:          db,
		logger:      logger,
		performedBy: performedBy,
		failures:    failures,
	}
}

// Record добавляет запись в журнал. Ошибка только логируется.
func (r *AuditRepository) Record(ctx context.Context, entry domain.AuditEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.PerformedBy == "" {
		entry.PerformedBy = r.performedBy
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (action, entity_name, details, performed_by, timestamp)
		VALUES ($1, $2, $3, $4, $5)`,
		string(entry.Action), entry.EntityName, entry.Details, entry.PerformedBy, entry.Timestamp,
	)
	if err != nil {
		if r.failures != nil {
			r.failures.Inc()
		}
		r.logger.WithError(err).WithFields(logrus.Fields{
			"action": entry.Action,
			"entity": entry.EntityName,
		}).Warn("Failed to write audit log")
	}
}
