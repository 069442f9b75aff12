package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// EventName identifies the audit event a mutating operation emits.
type EventName string

const (
	EventBridgeToCore         EventName = "BRIDGE_TO_CORE"
	EventBridgeToEvm          EventName = "BRIDGE_TO_EVM"
	EventSpotTransfer         EventName = "SPOT_TRANSFER"
	EventCrossMarketTransfer  EventName = "CROSS_MARKET_TRANSFER"
	EventLimitOrder           EventName = "LIMIT_ORDER"
	EventAPIWalletAdded       EventName = "API_WALLET_ADDED"
	EventFundsWithdrawn       EventName = "FUNDS_WITHDRAWN"
	EventEmergencyWithdraw    EventName = "EMERGENCY_WITHDRAW"
	EventSystemAddressUpdated EventName = "SYSTEM_ADDRESS_UPDATED"
	EventKeeperUpdated        EventName = "KEEPER_UPDATED"
	EventOwnershipTransferred EventName = "OWNERSHIP_TRANSFERRED"
)

// AuditEvent records one successful mutating operation. Exactly one event is
// emitted per successful call, after all external effects have completed;
// failed operations emit nothing.
type AuditEvent struct {
	ID        uuid.UUID              `json:"id"`
	Name      EventName              `json:"name"`
	Actor     common.Address         `json:"actor"`
	TxHash    string                 `json:"tx_hash,omitempty"` // empty for config-only operations
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt time.Time              `json:"created_at"`
}

func newEvent(name EventName, actor common.Address, txHash string, fields map[string]interface{}) AuditEvent {
	return AuditEvent{
		ID:        uuid.New(),
		Name:      name,
		Actor:     actor,
		TxHash:    txHash,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

func NewBridgeToCoreEvent(actor common.Address, txHash string, token common.Address, amount string) AuditEvent {
	return newEvent(EventBridgeToCore, actor, txHash, map[string]interface{}{
		"token":  token.Hex(),
		"amount": amount,
	})
}

func NewBridgeToEvmEvent(actor common.Address, txHash string, tokenID, weiAmount uint64) AuditEvent {
	return newEvent(EventBridgeToEvm, actor, txHash, map[string]interface{}{
		"token_id":   tokenID,
		"wei_amount": weiAmount,
	})
}

func NewSpotTransferEvent(actor common.Address, txHash string, to common.Address, tokenID, weiAmount uint64) AuditEvent {
	return newEvent(EventSpotTransfer, actor, txHash, map[string]interface{}{
		"to":         to.Hex(),
		"token_id":   tokenID,
		"wei_amount": weiAmount,
	})
}

func NewCrossMarketTransferEvent(actor common.Address, txHash string, notional uint64, toPerp bool) AuditEvent {
	return newEvent(EventCrossMarketTransfer, actor, txHash, map[string]interface{}{
		"notional": notional,
		"to_perp":  toPerp,
	})
}

func NewLimitOrderEvent(actor common.Address, txHash string, assetID uint32, isBuy bool, limitPx, size uint64, reduceOnly bool, tif string, clientOrderID string) AuditEvent {
	return newEvent(EventLimitOrder, actor, txHash, map[string]interface{}{
		"asset_id":        assetID,
		"is_buy":          isBuy,
		"limit_px":        limitPx,
		"size":            size,
		"reduce_only":     reduceOnly,
		"tif":             tif,
		"client_order_id": clientOrderID,
	})
}

func NewAPIWalletAddedEvent(actor common.Address, txHash string, wallet common.Address, name string) AuditEvent {
	return newEvent(EventAPIWalletAdded, actor, txHash, map[string]interface{}{
		"wallet_address": wallet.Hex(),
		"wallet_name":    name,
	})
}

func NewFundsWithdrawnEvent(actor common.Address, txHash string, to, token common.Address, amount string) AuditEvent {
	return newEvent(EventFundsWithdrawn, actor, txHash, map[string]interface{}{
		"to":     to.Hex(),
		"token":  token.Hex(),
		"amount": amount,
	})
}

func NewEmergencyWithdrawEvent(actor common.Address, txHash string, token common.Address, amount string, to common.Address) AuditEvent {
	return newEvent(EventEmergencyWithdraw, actor, txHash, map[string]interface{}{
		"token":  token.Hex(),
		"amount": amount,
		"to":     to.Hex(),
	})
}

func NewSystemAddressUpdatedEvent(actor common.Address, previous, current common.Address) AuditEvent {
	return newEvent(EventSystemAddressUpdated, actor, "", map[string]interface{}{
		"previous": previous.Hex(),
		"current":  current.Hex(),
	})
}

func NewKeeperUpdatedEvent(actor common.Address, previous, current common.Address) AuditEvent {
	return newEvent(EventKeeperUpdated, actor, "", map[string]interface{}{
		"previous": previous.Hex(),
		"current":  current.Hex(),
	})
}

func NewOwnershipTransferredEvent(actor common.Address, previousOwner, newOwner common.Address) AuditEvent {
	return newEvent(EventOwnershipTransferred, actor, "", map[string]interface{}{
		"previous_owner": previousOwner.Hex(),
		"new_owner":      newOwner.Hex(),
	})
}
