package postgres

import (
	"context"
	"fmt"
	"strings"

	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
)

// AuditRepo implements ports.AuditRepository. The audit_events table is
// append-only; there is no update or delete path.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts an audit event.
func (r *AuditRepo) Create(ctx context.Context, event *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, name, actor, tx_hash, fields, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		event.ID, string(event.Name), event.Actor.Hex(),
		event.TxHash, event.Fields, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// List fetches audit events with optional name filtering and pagination,
// newest first.
func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditEvent, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Name != nil {
		conditions = append(conditions, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, string(*params.Name))
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM audit_events %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit events: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, name, actor, tx_hash, fields, created_at
		FROM audit_events %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var (
			e     domain.AuditEvent
			name  string
			actor string
		)
		err := rows.Scan(&e.ID, &name, &actor, &e.TxHash, &e.Fields, &e.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit event row: %w", err)
		}
		e.Name = domain.EventName(name)
		e.Actor = common.HexToAddress(actor)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit event rows: %w", err)
	}
	return events, total, nil
}
