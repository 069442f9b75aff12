package dto

// AddAPIWalletRequest is the request body for registering an API wallet on
// the remote domain.
type AddAPIWalletRequest struct {
	Wallet string `json:"wallet" binding:"required,eth_addr"`
	Name   string `json:"name" binding:"required,max=64,safe_id"`
}

// BridgeToRemoteRequest is the request body for a spot send to the
// configured system holder. Numeric bounds are enforced by the service so
// that failures carry the action error codes.
type BridgeToRemoteRequest struct {
	TokenID   uint64 `json:"token_id"`
	WeiAmount uint64 `json:"wei_amount"`
}

// SpotTransferRequest is the request body for a spot send to an arbitrary
// recipient.
type SpotTransferRequest struct {
	To        string `json:"to" binding:"required,eth_addr"`
	TokenID   uint64 `json:"token_id"`
	WeiAmount uint64 `json:"wei_amount"`
}

// LimitOrderRequest is the request body for placing a resting limit order.
// TimeInForce is one of "alo", "gtc", "ioc"; ClientOrderID is an optional
// 0x-prefixed 128-bit hex string.
type LimitOrderRequest struct {
	AssetID       uint32  `json:"asset_id"`
	IsBuy         bool    `json:"is_buy"`
	LimitPrice    uint64  `json:"limit_price"`
	Size          uint64  `json:"size"`
	ReduceOnly    bool    `json:"reduce_only"`
	TimeInForce   string  `json:"time_in_force" binding:"required"`
	ClientOrderID *string `json:"client_order_id,omitempty"`
}

// CrossMarketTransferRequest is the request body for moving notional between
// the spot and perp balances.
type CrossMarketTransferRequest struct {
	Notional uint64 `json:"notional"`
	ToPerp   bool   `json:"to_perp"`
}

// BridgeToCoreRequest is the request body for a custody move to the system
// holder. An empty token means the native asset.
type BridgeToCoreRequest struct {
	Token  string `json:"token" binding:"omitempty,eth_addr"`
	Amount string `json:"amount" binding:"required,big_amount"`
}

// WithdrawRequest is the request body for a custody move to an arbitrary
// recipient.
type WithdrawRequest struct {
	To     string `json:"to" binding:"required,eth_addr"`
	Token  string `json:"token" binding:"omitempty,eth_addr"`
	Amount string `json:"amount" binding:"required,big_amount"`
}

// EmergencyWithdrawRequest is the request body for the last-resort drain to
// the owner. An absent amount sweeps the full balance.
type EmergencyWithdrawRequest struct {
	Token  string  `json:"token" binding:"omitempty,eth_addr"`
	Amount *string `json:"amount,omitempty" binding:"omitempty,big_amount"`
}

// SetAddressRequest is the request body for the configuration endpoints
// (system address, keeper, ownership).
type SetAddressRequest struct {
	Address string `json:"address" binding:"required,eth_addr"`
}

// AuditListQuery holds the query parameters for listing audit events.
type AuditListQuery struct {
	Name     string `form:"name"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// DispatchResponse is the response body for a submitted action envelope.
type DispatchResponse struct {
	Action       string `json:"action"`
	ActionID     string `json:"action_id"`
	EnvelopeSize int    `json:"envelope_size"`
	TxHash       string `json:"tx_hash"`
}

// TransferResponse is the response body for a completed custody movement.
type TransferResponse struct {
	TxHash string `json:"tx_hash"`
	To     string `json:"to"`
	Token  string `json:"token"` // zero address = native asset
	Amount string `json:"amount"`
}

// ControllerStateResponse is the response body for the controller state query.
type ControllerStateResponse struct {
	Owner         string  `json:"owner"`
	SystemAddress string  `json:"system_address"`
	Keeper        *string `json:"keeper,omitempty"`
}

// AuditEventResponse is the response body for a single audit event.
type AuditEventResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Actor     string                 `json:"actor"`
	TxHash    string                 `json:"tx_hash,omitempty"`
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt string                 `json:"created_at"`
}

// AuditListResponse wraps a paginated audit event list.
type AuditListResponse struct {
	Items      []AuditEventResponse `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}
