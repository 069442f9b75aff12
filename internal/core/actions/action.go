// Package actions defines the typed administrative commands the controller
// can issue to the remote dispatch endpoint and the canonical byte encoding
// they are submitted in. The encoding is external contract surface: the
// remote side decodes positionally by discriminator, so field order and
// widths here are frozen once deployed.
package actions

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/mo"
)

// ActionID is the 3-byte discriminator selecting the decoder on the remote
// side. Stored in the low 24 bits; the high byte is always zero.
type ActionID uint32

// Frozen discriminator table. These values mirror what the remote dispatch
// endpoint expects and must never be renumbered. BridgeToRemote and
// DirectSpotTransfer share ActionIDSpotSend: both are spot sends on the
// remote side and differ only in recipient semantics.
const (
	ActionIDLimitOrder       ActionID = 0x000001
	ActionIDSpotSend         ActionID = 0x000006
	ActionIDUsdClassTransfer ActionID = 0x000007
	ActionIDAddApiWallet     ActionID = 0x000009
)

// Hex renders the discriminator as it appears on the wire, e.g. "0x000006".
func (id ActionID) Hex() string {
	return fmt.Sprintf("0x%06x", uint32(id))
}

// TimeInForce is the wire code for order time-in-force.
type TimeInForce uint8

const (
	TifAlo TimeInForce = 1 // add-liquidity-only (post only)
	TifGtc TimeInForce = 2 // good till cancel
	TifIoc TimeInForce = 3 // immediate or cancel
)

// Valid reports whether t is one of the defined wire codes.
func (t TimeInForce) Valid() bool {
	return t >= TifAlo && t <= TifIoc
}

func (t TimeInForce) String() string {
	switch t {
	case TifAlo:
		return "ALO"
	case TifGtc:
		return "GTC"
	case TifIoc:
		return "IOC"
	default:
		return fmt.Sprintf("TIF(%d)", uint8(t))
	}
}

// ParseTimeInForce maps the API-level label to its wire code.
func ParseTimeInForce(s string) (TimeInForce, error) {
	switch strings.ToUpper(s) {
	case "ALO":
		return TifAlo, nil
	case "GTC":
		return TifGtc, nil
	case "IOC":
		return TifIoc, nil
	default:
		return 0, fmt.Errorf("unknown time in force %q", s)
	}
}

// Cloid is a 128-bit client order id. An absent cloid encodes as sixteen
// zero bytes.
type Cloid [16]byte

// ParseCloid parses a 0x-prefixed 32-digit hex string.
func ParseCloid(s string) (Cloid, error) {
	var c Cloid
	raw := strings.TrimPrefix(s, "0x")
	if len(raw) != 32 {
		return c, fmt.Errorf("cloid must be 16 bytes of hex, got %d digits", len(raw))
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return c, fmt.Errorf("invalid cloid hex: %w", err)
	}
	copy(c[:], b)
	return c, nil
}

// Hex renders the cloid as a 0x-prefixed hex string.
func (c Cloid) Hex() string {
	return "0x" + hex.EncodeToString(c[:])
}

// Action is the sealed union of commands the controller can dispatch.
// Each variant carries its fields in the order they are serialized;
// encodePayload both seals the union and defines that serialization.
type Action interface {
	ID() ActionID
	Name() string
	encodePayload(w *payloadWriter)
}

// AddApiWallet registers an API wallet (agent) under the given name.
type AddApiWallet struct {
	Address    common.Address
	WalletName string
}

func (AddApiWallet) ID() ActionID { return ActionIDAddApiWallet }
func (AddApiWallet) Name() string { return "add_api_wallet" }

func (a AddApiWallet) encodePayload(w *payloadWriter) {
	w.putAddress(a.Address)
	w.putString(a.WalletName)
}

// BridgeToRemote moves spot balance to the system-designated holder on the
// remote side. The recipient is the configured system address, captured at
// build time by the calling operation.
type BridgeToRemote struct {
	SystemAddress common.Address
	TokenID       uint64
	WeiAmount     uint64
}

func (BridgeToRemote) ID() ActionID { return ActionIDSpotSend }
func (BridgeToRemote) Name() string { return "bridge_to_remote" }

func (a BridgeToRemote) encodePayload(w *payloadWriter) {
	w.putAddress(a.SystemAddress)
	w.putUint64(a.TokenID)
	w.putUint64(a.WeiAmount)
}

// DirectSpotTransfer moves spot balance to an arbitrary recipient on the
// remote side.
type DirectSpotTransfer struct {
	To        common.Address
	TokenID   uint64
	WeiAmount uint64
}

func (DirectSpotTransfer) ID() ActionID { return ActionIDSpotSend }
func (DirectSpotTransfer) Name() string { return "direct_spot_transfer" }

func (a DirectSpotTransfer) encodePayload(w *payloadWriter) {
	w.putAddress(a.To)
	w.putUint64(a.TokenID)
	w.putUint64(a.WeiAmount)
}

// PlaceLimitOrder submits a resting limit order on the remote book.
type PlaceLimitOrder struct {
	AssetID       uint32
	IsBuy         bool
	LimitPrice    uint64
	Size          uint64
	ReduceOnly    bool
	TimeInForce   TimeInForce
	ClientOrderID mo.Option[Cloid]
}

func (PlaceLimitOrder) ID() ActionID { return ActionIDLimitOrder }
func (PlaceLimitOrder) Name() string { return "place_limit_order" }

func (a PlaceLimitOrder) encodePayload(w *payloadWriter) {
	w.putUint32(a.AssetID)
	w.putBool(a.IsBuy)
	w.putUint64(a.LimitPrice)
	w.putUint64(a.Size)
	w.putBool(a.ReduceOnly)
	w.putUint8(uint8(a.TimeInForce))
	cloid := a.ClientOrderID.OrElse(Cloid{})
	w.putRaw(cloid[:])
}

// UsdClassTransfer moves notional between the spot and perp margin classes.
type UsdClassTransfer struct {
	Notional uint64
	ToPerp   bool
}

func (UsdClassTransfer) ID() ActionID { return ActionIDUsdClassTransfer }
func (UsdClassTransfer) Name() string { return "usd_class_transfer" }

func (a UsdClassTransfer) encodePayload(w *payloadWriter) {
	w.putUint64(a.Notional)
	w.putBool(a.ToPerp)
}
