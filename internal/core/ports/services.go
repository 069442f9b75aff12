package ports

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"core-bridge-controller/internal/core/actions"
	"core-bridge-controller/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/mo"
)

// SignatureService handles secp256k1 request signing and principal recovery.
type SignatureService interface {
	// Sign hashes the payload with Keccak-256 and signs it, returning the
	// 65-byte signature hex-encoded.
	Sign(key *ecdsa.PrivateKey, payload string) (string, error)
	// Recover returns the address that signed the payload.
	Recover(payload string, signature string) (common.Address, error)
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, principal string, nonce string, ttl time.Duration) (bool, error)
}

// --- Service Ports (Business Logic) ---

// ControllerService is the administrative surface: every mutating operation
// is owner-gated, guarded against concurrent invocation, and emits exactly
// one audit event on success.
type ControllerService interface {
	// Dispatch trigger operations: validate, encode, submit to the gateway.
	AddApiWallet(ctx context.Context, req AddApiWalletRequest) (*DispatchResult, error)
	BridgeToRemote(ctx context.Context, req BridgeToRemoteRequest) (*DispatchResult, error)
	DirectSpotTransfer(ctx context.Context, req SpotTransferRequest) (*DispatchResult, error)
	PlaceLimitOrder(ctx context.Context, req LimitOrderRequest) (*DispatchResult, error)
	CrossMarketTransfer(ctx context.Context, req CrossMarketTransferRequest) (*DispatchResult, error)

	// Custody operations: direct asset movement, no dispatch.
	BridgeToCore(ctx context.Context, req BridgeToCoreRequest) (*TransferResult, error)
	WithdrawTo(ctx context.Context, req WithdrawRequest) (*TransferResult, error)
	EmergencyWithdraw(ctx context.Context, req EmergencyWithdrawRequest) (*TransferResult, error)

	// Configuration operations.
	SetSystemAddress(ctx context.Context, caller domain.Principal, addr common.Address) error
	SetKeeper(ctx context.Context, caller domain.Principal, addr common.Address) error
	TransferOwnership(ctx context.Context, caller domain.Principal, newOwner common.Address) error
	GetState(ctx context.Context, caller domain.Principal) (domain.ControllerState, error)
}

// AddApiWalletRequest holds validated input for API wallet registration.
type AddApiWalletRequest struct {
	Caller  domain.Principal
	Address common.Address
	Name    string
}

// BridgeToRemoteRequest holds input for a spot send to the system holder.
// The recipient is the configured system address at call time.
type BridgeToRemoteRequest struct {
	Caller    domain.Principal
	TokenID   uint64
	WeiAmount uint64
}

// SpotTransferRequest holds input for a spot send to an arbitrary recipient.
type SpotTransferRequest struct {
	Caller    domain.Principal
	To        common.Address
	TokenID   uint64
	WeiAmount uint64
}

// LimitOrderRequest holds input for placing a resting limit order.
type LimitOrderRequest struct {
	Caller        domain.Principal
	AssetID       uint32
	IsBuy         bool
	LimitPrice    uint64
	Size          uint64
	ReduceOnly    bool
	TimeInForce   actions.TimeInForce
	ClientOrderID mo.Option[actions.Cloid]
}

// CrossMarketTransferRequest holds input for a spot/perp class transfer.
type CrossMarketTransferRequest struct {
	Caller   domain.Principal
	Notional uint64
	ToPerp   bool
}

// BridgeToCoreRequest holds input for a custody move to the system holder.
// A zero token address means the native asset.
type BridgeToCoreRequest struct {
	Caller domain.Principal
	Token  common.Address
	Amount *big.Int
}

// WithdrawRequest holds input for a custody move to an arbitrary recipient.
type WithdrawRequest struct {
	Caller domain.Principal
	To     common.Address
	Token  common.Address
	Amount *big.Int
}

// EmergencyWithdrawRequest holds input for the last-resort drain to the
// owner. A nil or zero amount sweeps the full balance of the asset.
type EmergencyWithdrawRequest struct {
	Caller domain.Principal
	Token  common.Address
	Amount *big.Int
}

// DispatchResult describes a successfully submitted action envelope.
type DispatchResult struct {
	Action       string
	ActionID     actions.ActionID
	EnvelopeSize int
	TxHash       string
}

// TransferResult describes a completed custody movement.
type TransferResult struct {
	TxHash string
	To     common.Address
	Token  common.Address // zero address = native asset
	Amount *big.Int
}

// AuditService records and serves audit events.
type AuditService interface {
	// Record logs, persists and broadcasts the event. Persistence is
	// best-effort and never fails the calling operation.
	Record(ctx context.Context, event domain.AuditEvent)
	List(ctx context.Context, params AuditListParams) ([]domain.AuditEvent, int64, error)
}

// AuditBroadcaster fans out audit events to live subscribers. Delivery is
// best-effort: slow subscribers may miss events.
type AuditBroadcaster interface {
	Broadcast(event domain.AuditEvent)
}
