package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *domain.AuditEvent {
	return &domain.AuditEvent{
		ID:     uuid.New(),
		Name:   domain.EventLimitOrder,
		Actor:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		TxHash: "0xdeadbeef",
		Fields: map[string]interface{}{
			"asset": uint32(5),
			"size":  "1000000",
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func auditColumns() []string {
	return []string{"id", "name", "actor", "tx_hash", "fields", "created_at"}
}

func auditRow(e *domain.AuditEvent) *pgxmock.Rows {
	return pgxmock.NewRows(auditColumns()).AddRow(
		e.ID, string(e.Name), e.Actor.Hex(), e.TxHash, e.Fields, e.CreatedAt,
	)
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	ev := newTestEvent()

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(ev.ID, string(ev.Name), ev.Actor.Hex(), ev.TxHash, ev.Fields, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), ev)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	ev := newTestEvent()

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(ev.ID, string(ev.Name), ev.Actor.Hex(), ev.TxHash, ev.Fields, ev.CreatedAt).
		WillReturnError(errors.New("connection refused"))

	err = repo.Create(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert audit event")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	ev1 := newTestEvent()
	ev2 := newTestEvent()
	ev2.Name = domain.EventBridgeToEvm

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery("SELECT .+ FROM audit_events").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(auditColumns()).
			AddRow(ev2.ID, string(ev2.Name), ev2.Actor.Hex(), ev2.TxHash, ev2.Fields, ev2.CreatedAt).
			AddRow(ev1.ID, string(ev1.Name), ev1.Actor.Hex(), ev1.TxHash, ev1.Fields, ev1.CreatedAt))

	events, total, err := repo.List(context.Background(), ports.AuditListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventBridgeToEvm, events[0].Name)
	assert.Equal(t, ev1.Actor, events[1].Actor)
	assert.Equal(t, ev1.TxHash, events[1].TxHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_FilterByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	ev := newTestEvent()
	name := domain.EventLimitOrder

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(string(name)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM audit_events WHERE name").
		WithArgs(string(name), 25, 0).
		WillReturnRows(auditRow(ev))

	events, total, err := repo.List(context.Background(), ports.AuditListParams{
		Name:     &name,
		Page:     1,
		PageSize: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, name, events[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM audit_events").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(auditColumns()))

	events, total, err := repo.List(context.Background(), ports.AuditListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_CountError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("relation does not exist"))

	_, _, err = repo.List(context.Background(), ports.AuditListParams{Page: 1, PageSize: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count audit events")
}
