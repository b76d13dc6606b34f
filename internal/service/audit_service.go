package service

import (
	"context"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	go func() {
		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress)
		if entry.SessionID != nil {
			ev = ev.Str("session_id", entry.SessionID.String())
		}
		ev.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}

// ListBySession returns the newest audit entries of a session first.
// Without a repository the trail is not kept and the list is empty.
func (s *auditService) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	if s.repo == nil {
		return []domain.AuditLog{}, nil
	}
	logs, err := s.repo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	return logs, nil
}
