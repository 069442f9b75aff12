package ports

import (
	"context"

	"core-bridge-controller/internal/core/domain"
)

// AuditRepository defines persistence operations for audit events.
type AuditRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, params AuditListParams) ([]domain.AuditEvent, int64, error)
}

// AuditListParams holds filter + pagination for listing audit events,
// newest first.
type AuditListParams struct {
	Name     *domain.EventName
	Page     int
	PageSize int
}
