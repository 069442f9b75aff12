package service

import (
	"context"

	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/pkg/apperror"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	bus  ports.AuditBroadcaster
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, events are only logged and broadcast; if bus is nil,
// no live fan-out happens.
func NewAuditService(repo ports.AuditRepository, bus ports.AuditBroadcaster, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, bus: bus, log: log}
}

// Record logs the event, fans it out to live subscribers, and persists it
// asynchronously. Persistence failures are logged and never surface to the
// operation that emitted the event.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) {
	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("event", string(event.Name)).
		Str("actor", event.Actor.Hex()).
		Str("tx_hash", event.TxHash).
		Fields(event.Fields).
		Msg("audit")

	if s.bus != nil {
		s.bus.Broadcast(event)
	}

	if s.repo != nil {
		go func() {
			if err := s.repo.Create(context.Background(), &event); err != nil {
				s.log.Warn().Err(err).Str("event", string(event.Name)).Msg("failed to persist audit event")
			}
		}()
	}
}

// List returns a page of persisted events. Without a repository there is
// nothing to list.
func (s *auditService) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditEvent, int64, error) {
	if s.repo == nil {
		return []domain.AuditEvent{}, 0, nil
	}
	events, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return events, total, nil
}
