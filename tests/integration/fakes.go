package integration

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
)

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryAuditRepo) List(_ context.Context, params ports.AuditListParams) ([]domain.AuditEvent, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.AuditEvent, 0, len(r.events))
	for _, e := range r.events {
		if params.Name != nil && e.Name != *params.Name {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (params.Page - 1) * params.PageSize
	if offset >= len(matched) {
		return []domain.AuditEvent{}, total, nil
	}
	end := offset + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *inMemoryAuditRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

func (r *inMemoryAuditRepo) last() (domain.AuditEvent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.events) == 0 {
		return domain.AuditEvent{}, false
	}
	return r.events[len(r.events)-1], true
}

// --- Fake Dispatch Gateway ---

// fakeDispatchGateway records every submitted envelope and returns
// deterministic transaction hashes. Tests can inject a failure or a blocking
// channel to hold a submission (and with it the invocation guard) open.
type fakeDispatchGateway struct {
	mu        sync.Mutex
	envelopes [][]byte
	failWith  error
	block     chan struct{}
}

func newFakeDispatchGateway() *fakeDispatchGateway {
	return &fakeDispatchGateway{}
}

func (g *fakeDispatchGateway) setError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failWith = err
}

func (g *fakeDispatchGateway) setBlock(ch chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.block = ch
}

func (g *fakeDispatchGateway) Submit(ctx context.Context, raw []byte) (string, error) {
	g.mu.Lock()
	block := g.block
	fail := g.failWith
	g.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if fail != nil {
		return "", fail
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	g.envelopes = append(g.envelopes, cp)
	return fmt.Sprintf("0xdd%062x", len(g.envelopes)), nil
}

func (g *fakeDispatchGateway) submissions() [][]byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([][]byte, len(g.envelopes))
	copy(out, g.envelopes)
	return out
}

// --- Fake Asset Mover ---

type movement struct {
	kind   string // "native" or "token"
	token  common.Address
	to     common.Address
	amount *big.Int
}

// fakeAssetMover reports configurable balances and records every transfer.
type fakeAssetMover struct {
	mu            sync.Mutex
	nativeBalance *big.Int
	tokenBalances map[common.Address]*big.Int
	moves         []movement
	failWith      error
}

func newFakeAssetMover(nativeBalance *big.Int) *fakeAssetMover {
	return &fakeAssetMover{
		nativeBalance: new(big.Int).Set(nativeBalance),
		tokenBalances: make(map[common.Address]*big.Int),
	}
}

func (m *fakeAssetMover) setTokenBalance(token common.Address, balance *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenBalances[token] = new(big.Int).Set(balance)
}

func (m *fakeAssetMover) setError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *fakeAssetMover) TransferNative(_ context.Context, to common.Address, amount *big.Int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return "", m.failWith
	}
	m.moves = append(m.moves, movement{kind: "native", to: to, amount: new(big.Int).Set(amount)})
	return fmt.Sprintf("0xee%062x", len(m.moves)), nil
}

func (m *fakeAssetMover) TransferToken(_ context.Context, token, to common.Address, amount *big.Int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return "", m.failWith
	}
	m.moves = append(m.moves, movement{kind: "token", token: token, to: to, amount: new(big.Int).Set(amount)})
	return fmt.Sprintf("0xee%062x", len(m.moves)), nil
}

func (m *fakeAssetMover) NativeBalance(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.nativeBalance), nil
}

func (m *fakeAssetMover) TokenBalance(_ context.Context, token common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bal, ok := m.tokenBalances[token]; ok {
		return new(big.Int).Set(bal), nil
	}
	return new(big.Int), nil
}

func (m *fakeAssetMover) movements() []movement {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]movement, len(m.moves))
	copy(out, m.moves)
	return out
}
