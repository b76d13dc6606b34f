package postgres

import (
	"context"
	"fmt"

	"greenfund-demo/internal/core/domain"

	"github.com/google/uuid"
)

const auditSchema = `CREATE TABLE IF NOT EXISTS demo_audit_logs (
	id            UUID PRIMARY KEY,
	session_id    UUID,
	action        VARCHAR(32) NOT NULL,
	resource_type VARCHAR(32) NOT NULL,
	resource_id   TEXT NOT NULL DEFAULT '',
	details       JSONB,
	ip_address    VARCHAR(64) NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_demo_audit_logs_session ON demo_audit_logs (session_id, created_at)`

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// EnsureSchema creates the audit table if it does not exist.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, auditSchema); err != nil {
		return fmt.Errorf("create audit schema: %w", err)
	}
	return nil
}

// Create inserts an audit entry.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `INSERT INTO demo_audit_logs (id, session_id, action, resource_type, resource_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var details *string
	if log.Details != "" {
		details = &log.Details
	}

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.SessionID, string(log.Action), log.ResourceType,
		log.ResourceID, details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListBySession returns the newest entries of a session first.
func (r *AuditRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := `SELECT id, session_id, action, resource_type, resource_id, details, ip_address, created_at
		FROM demo_audit_logs WHERE session_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.AuditLog
	for rows.Next() {
		var (
			l       domain.AuditLog
			action  string
			details *string
		)
		if err := rows.Scan(&l.ID, &l.SessionID, &action, &l.ResourceType,
			&l.ResourceID, &details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		l.Action = domain.AuditAction(action)
		if details != nil {
			l.Details = *details
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit logs: %w", err)
	}
	return logs, nil
}
