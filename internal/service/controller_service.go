package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"core-bridge-controller/internal/core/actions"
	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/internal/instrumentation"
	"core-bridge-controller/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// ControllerServiceImpl implements ports.ControllerService. Controller
// state lives in memory for the process lifetime, seeded from config at
// startup; a restart re-seeds it.
type ControllerServiceImpl struct {
	dispatch ports.DispatchGateway
	mover    ports.AssetMover
	audit    ports.AuditService
	metrics  *instrumentation.Metrics
	version  uint8
	log      zerolog.Logger

	// guard enforces single-invocation execution: while one mutating
	// operation is in flight (including its external call), every other
	// mutating call is refused, not queued.
	guard sync.Mutex

	mu    sync.RWMutex
	state domain.ControllerState
}

// NewControllerService creates a new ControllerServiceImpl.
func NewControllerService(
	state domain.ControllerState,
	dispatch ports.DispatchGateway,
	mover ports.AssetMover,
	audit ports.AuditService,
	metrics *instrumentation.Metrics,
	version uint8,
	log zerolog.Logger,
) *ControllerServiceImpl {
	return &ControllerServiceImpl{
		dispatch: dispatch,
		mover:    mover,
		audit:    audit,
		metrics:  metrics,
		version:  version,
		log:      log,
		state:    state,
	}
}

// requireOwner is the authorization gate invoked first in every operation.
func (s *ControllerServiceImpl) requireOwner(caller domain.Principal) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.IsOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// acquireGuard takes the invocation guard, or rejects the call if another
// mutating operation is still in flight.
func (s *ControllerServiceImpl) acquireGuard() (release func(), err error) {
	if !s.guard.TryLock() {
		return nil, apperror.ErrOperationInFlight()
	}
	return s.guard.Unlock, nil
}

// snapshot returns a copy of the current controller state.
func (s *ControllerServiceImpl) snapshot() domain.ControllerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// --- Dispatch trigger operations ---

// AddApiWallet registers an API wallet on the remote side.
func (s *ControllerServiceImpl) AddApiWallet(ctx context.Context, req ports.AddApiWalletRequest) (*ports.DispatchResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Address == (common.Address{}) {
		return nil, apperror.ErrZeroAddress()
	}
	if req.Name == "" {
		return nil, apperror.ErrInvalidWalletName()
	}

	res, err := s.submit(ctx, actions.AddApiWallet{
		Address:    req.Address,
		WalletName: req.Name,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewAPIWalletAddedEvent(req.Caller, res.TxHash, req.Address, req.Name))
	return res, nil
}

// BridgeToRemote spot-sends to the configured system address, moving the
// asset back to the local domain.
func (s *ControllerServiceImpl) BridgeToRemote(ctx context.Context, req ports.BridgeToRemoteRequest) (*ports.DispatchResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.WeiAmount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	state := s.snapshot()
	if !state.HasSystemAddress() {
		return nil, apperror.ErrSystemAddressUnset()
	}

	res, err := s.submit(ctx, actions.BridgeToRemote{
		SystemAddress: state.SystemAddress,
		TokenID:       req.TokenID,
		WeiAmount:     req.WeiAmount,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewBridgeToEvmEvent(req.Caller, res.TxHash, req.TokenID, req.WeiAmount))
	return res, nil
}

// DirectSpotTransfer spot-sends to a caller-supplied recipient.
func (s *ControllerServiceImpl) DirectSpotTransfer(ctx context.Context, req ports.SpotTransferRequest) (*ports.DispatchResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.WeiAmount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.To == (common.Address{}) {
		return nil, apperror.ErrZeroAddress()
	}

	res, err := s.submit(ctx, actions.DirectSpotTransfer{
		To:        req.To,
		TokenID:   req.TokenID,
		WeiAmount: req.WeiAmount,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewSpotTransferEvent(req.Caller, res.TxHash, req.To, req.TokenID, req.WeiAmount))
	return res, nil
}

// PlaceLimitOrder submits a resting limit order.
func (s *ControllerServiceImpl) PlaceLimitOrder(ctx context.Context, req ports.LimitOrderRequest) (*ports.DispatchResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Size == 0 || req.LimitPrice == 0 {
		return nil, apperror.ErrInvalidOrder()
	}
	if !req.TimeInForce.Valid() {
		return nil, apperror.ErrInvalidTimeInForce()
	}

	res, err := s.submit(ctx, actions.PlaceLimitOrder{
		AssetID:       req.AssetID,
		IsBuy:         req.IsBuy,
		LimitPrice:    req.LimitPrice,
		Size:          req.Size,
		ReduceOnly:    req.ReduceOnly,
		TimeInForce:   req.TimeInForce,
		ClientOrderID: req.ClientOrderID,
	})
	if err != nil {
		return nil, err
	}

	cloid := ""
	if c, ok := req.ClientOrderID.Get(); ok {
		cloid = c.Hex()
	}
	s.audit.Record(ctx, domain.NewLimitOrderEvent(
		req.Caller, res.TxHash,
		req.AssetID, req.IsBuy, req.LimitPrice, req.Size, req.ReduceOnly,
		req.TimeInForce.String(), cloid,
	))
	return res, nil
}

// CrossMarketTransfer moves notional between the spot and perp classes.
func (s *ControllerServiceImpl) CrossMarketTransfer(ctx context.Context, req ports.CrossMarketTransferRequest) (*ports.DispatchResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Notional == 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	res, err := s.submit(ctx, actions.UsdClassTransfer{
		Notional: req.Notional,
		ToPerp:   req.ToPerp,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewCrossMarketTransferEvent(req.Caller, res.TxHash, req.Notional, req.ToPerp))
	return res, nil
}

// submit encodes the action and forwards the envelope to the dispatch
// gateway. There are no retries: a gateway failure fails the operation.
func (s *ControllerServiceImpl) submit(ctx context.Context, act actions.Action) (*ports.DispatchResult, error) {
	env := actions.Encode(act, s.version)

	start := time.Now()
	txHash, err := s.dispatch.Submit(ctx, env)
	if err != nil {
		appErr := apperror.ErrDispatchFailed(fmt.Errorf("submit %s: %w", act.Name(), err))
		s.metrics.RecordError("dispatch", appErr.Code)
		return nil, appErr
	}
	s.metrics.ObserveDispatch(time.Since(start))
	s.metrics.RecordActionSubmitted(act.Name())

	s.log.Info().
		Str("action", act.Name()).
		Str("action_id", act.ID().Hex()).
		Int("envelope_bytes", len(env)).
		Str("tx_hash", txHash).
		Msg("action submitted")

	return &ports.DispatchResult{
		Action:       act.Name(),
		ActionID:     act.ID(),
		EnvelopeSize: len(env),
		TxHash:       txHash,
	}, nil
}

// --- Custody operations ---

// BridgeToCore moves custody from the controller to the configured system
// address, crediting the remote domain. No dispatch call is made.
func (s *ControllerServiceImpl) BridgeToCore(ctx context.Context, req ports.BridgeToCoreRequest) (*ports.TransferResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	state := s.snapshot()
	if !state.HasSystemAddress() {
		return nil, apperror.ErrSystemAddressUnset()
	}
	if err := s.requireBalance(ctx, req.Token, req.Amount); err != nil {
		return nil, err
	}

	res, err := s.transfer(ctx, "bridge_to_core", state.SystemAddress, req.Token, req.Amount)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewBridgeToCoreEvent(req.Caller, res.TxHash, req.Token, req.Amount.String()))
	return res, nil
}

// WithdrawTo moves custody to a caller-supplied recipient.
func (s *ControllerServiceImpl) WithdrawTo(ctx context.Context, req ports.WithdrawRequest) (*ports.TransferResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.To == (common.Address{}) {
		return nil, apperror.ErrZeroAddress()
	}
	if err := s.requireBalance(ctx, req.Token, req.Amount); err != nil {
		return nil, err
	}

	res, err := s.transfer(ctx, "withdraw", req.To, req.Token, req.Amount)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.NewFundsWithdrawnEvent(req.Caller, res.TxHash, req.To, req.Token, req.Amount.String()))
	return res, nil
}

// EmergencyWithdraw drains the controller to the owner. A nil or zero
// amount sweeps the full balance of the asset; recipient validation is
// bypassed since the recipient is always the owner.
func (s *ControllerServiceImpl) EmergencyWithdraw(ctx context.Context, req ports.EmergencyWithdrawRequest) (*ports.TransferResult, error) {
	if err := s.requireOwner(req.Caller); err != nil {
		return nil, err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return nil, err
	}
	defer release()

	owner := s.snapshot().Owner

	amount := req.Amount
	if amount == nil || amount.Sign() == 0 {
		balance, err := s.balanceOf(ctx, req.Token)
		if err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("query balance: %w", err))
		}
		amount = balance
	} else {
		if err := s.requireBalance(ctx, req.Token, amount); err != nil {
			return nil, err
		}
	}

	res, err := s.transfer(ctx, "emergency_withdraw", owner, req.Token, amount)
	if err != nil {
		return nil, err
	}

	s.log.Warn().
		Str("token", req.Token.Hex()).
		Str("amount", amount.String()).
		Str("tx_hash", res.TxHash).
		Msg("emergency withdraw executed")

	s.audit.Record(ctx, domain.NewEmergencyWithdrawEvent(req.Caller, res.TxHash, req.Token, amount.String(), owner))
	return res, nil
}

// balanceOf returns the controller's balance of the asset. A zero token
// address means the native asset.
func (s *ControllerServiceImpl) balanceOf(ctx context.Context, token common.Address) (*big.Int, error) {
	if token == (common.Address{}) {
		return s.mover.NativeBalance(ctx)
	}
	return s.mover.TokenBalance(ctx, token)
}

// requireBalance fails with InsufficientBalance when the controller holds
// less than amount of the asset.
func (s *ControllerServiceImpl) requireBalance(ctx context.Context, token common.Address, amount *big.Int) error {
	balance, err := s.balanceOf(ctx, token)
	if err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("query balance: %w", err))
	}
	if balance.Cmp(amount) < 0 {
		return apperror.ErrInsufficientBalance()
	}
	return nil
}

// transfer executes the asset movement and waits for it to complete.
// Side effects are irreversible once the primitive succeeds.
func (s *ControllerServiceImpl) transfer(ctx context.Context, kind string, to, token common.Address, amount *big.Int) (*ports.TransferResult, error) {
	var (
		txHash string
		err    error
	)
	if token == (common.Address{}) {
		txHash, err = s.mover.TransferNative(ctx, to, amount)
	} else {
		txHash, err = s.mover.TransferToken(ctx, token, to, amount)
	}
	if err != nil {
		appErr := apperror.ErrTransferFailed(fmt.Errorf("%s: %w", kind, err))
		s.metrics.RecordError("custody", appErr.Code)
		return nil, appErr
	}
	s.metrics.RecordCustodyTransfer(kind)

	s.log.Info().
		Str("kind", kind).
		Str("to", to.Hex()).
		Str("token", token.Hex()).
		Str("amount", amount.String()).
		Str("tx_hash", txHash).
		Msg("custody transfer completed")

	return &ports.TransferResult{
		TxHash: txHash,
		To:     to,
		Token:  token,
		Amount: amount,
	}, nil
}

// --- Configuration operations ---

// SetSystemAddress updates the system holder address. The zero address is
// rejected, leaving the prior value intact.
func (s *ControllerServiceImpl) SetSystemAddress(ctx context.Context, caller domain.Principal, addr common.Address) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return err
	}
	defer release()

	if addr == (common.Address{}) {
		return apperror.ErrZeroAddress()
	}

	s.mu.Lock()
	previous := s.state.SystemAddress
	s.state.SystemAddress = addr
	s.mu.Unlock()

	s.log.Info().
		Str("previous", previous.Hex()).
		Str("current", addr.Hex()).
		Msg("system address updated")

	s.audit.Record(ctx, domain.NewSystemAddressUpdatedEvent(caller, previous, addr))
	return nil
}

// SetKeeper updates the reserved keeper address. The zero address clears it.
func (s *ControllerServiceImpl) SetKeeper(ctx context.Context, caller domain.Principal, addr common.Address) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	previous := s.state.Keeper.OrElse(common.Address{})
	if addr == (common.Address{}) {
		s.state.Keeper = mo.None[common.Address]()
	} else {
		s.state.Keeper = mo.Some(addr)
	}
	s.mu.Unlock()

	s.log.Info().
		Str("previous", previous.Hex()).
		Str("current", addr.Hex()).
		Msg("keeper updated")

	s.audit.Record(ctx, domain.NewKeeperUpdatedEvent(caller, previous, addr))
	return nil
}

// TransferOwnership hands the controller to a new owner. Takes effect for
// the very next call; the previous owner loses access immediately.
func (s *ControllerServiceImpl) TransferOwnership(ctx context.Context, caller domain.Principal, newOwner common.Address) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	release, err := s.acquireGuard()
	if err != nil {
		return err
	}
	defer release()

	if newOwner == (common.Address{}) {
		return apperror.ErrZeroAddress()
	}

	s.mu.Lock()
	previous := s.state.Owner
	s.state.Owner = newOwner
	s.mu.Unlock()

	s.log.Info().
		Str("previous_owner", previous.Hex()).
		Str("new_owner", newOwner.Hex()).
		Msg("ownership transferred")

	s.audit.Record(ctx, domain.NewOwnershipTransferredEvent(caller, previous, newOwner))
	return nil
}

// GetState returns a snapshot of the controller configuration.
func (s *ControllerServiceImpl) GetState(ctx context.Context, caller domain.Principal) (domain.ControllerState, error) {
	if err := s.requireOwner(caller); err != nil {
		return domain.ControllerState{}, err
	}
	return s.snapshot(), nil
}
