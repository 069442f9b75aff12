package actions

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleActions() []Action {
	return []Action{
		AddApiWallet{Address: common.HexToAddress("0x1111111111111111111111111111111111111111"), WalletName: "ops"},
		BridgeToRemote{SystemAddress: common.HexToAddress("0x2222222222222222222222222222222222222222"), TokenID: 1105, WeiAmount: 1_000_000},
		DirectSpotTransfer{To: common.HexToAddress("0x3333333333333333333333333333333333333333"), TokenID: 7, WeiAmount: 42},
		PlaceLimitOrder{AssetID: 5, IsBuy: true, LimitPrice: 100, Size: 1, TimeInForce: TifGtc},
		UsdClassTransfer{Notional: 250, ToPerp: true},
	}
}

func TestEncode_Deterministic(t *testing.T) {
	for _, a := range sampleActions() {
		t.Run(a.Name(), func(t *testing.T) {
			first := Encode(a, 1)
			second := Encode(a, 1)
			assert.Equal(t, []byte(first), []byte(second))
		})
	}
}

func TestEncode_LengthInvariant(t *testing.T) {
	for _, a := range sampleActions() {
		t.Run(a.Name(), func(t *testing.T) {
			env := Encode(a, 1)
			assert.Equal(t, 4+len(env.Payload()), len(env))
		})
	}

	// Variable-length payloads keep the invariant too.
	for _, name := range []string{"", "x", "a longer wallet label"} {
		env := Encode(AddApiWallet{WalletName: name}, 1)
		assert.Equal(t, 4+len(env.Payload()), len(env))
		assert.Equal(t, 4+20+4+len(name), len(env))
	}
}

func TestEncode_HeaderLayout(t *testing.T) {
	tests := []struct {
		action  Action
		version uint8
		wantID  ActionID
	}{
		{AddApiWallet{WalletName: "a"}, 1, ActionIDAddApiWallet},
		{BridgeToRemote{TokenID: 9, WeiAmount: 1}, 3, ActionIDSpotSend},
		{DirectSpotTransfer{TokenID: 9, WeiAmount: 1}, 3, ActionIDSpotSend},
		{PlaceLimitOrder{Size: 1}, 200, ActionIDLimitOrder},
		{UsdClassTransfer{Notional: 1}, 255, ActionIDUsdClassTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.action.Name(), func(t *testing.T) {
			env := Encode(tt.action, tt.version)
			assert.Equal(t, tt.version, env.Version())
			assert.Equal(t, tt.wantID, env.ActionID())
			assert.Equal(t, []byte{byte(tt.wantID >> 16), byte(tt.wantID >> 8), byte(tt.wantID)}, []byte(env[1:4]))
		})
	}
}

// The discriminator depends only on the variant, never on field values.
func TestEncode_DiscriminatorIndependentOfFields(t *testing.T) {
	a := Encode(PlaceLimitOrder{AssetID: 1, Size: 1, LimitPrice: 1}, 1)
	b := Encode(PlaceLimitOrder{AssetID: 999, IsBuy: true, Size: 12345, LimitPrice: 67890, ReduceOnly: true, TimeInForce: TifIoc}, 1)
	assert.Equal(t, a.ActionID(), b.ActionID())
}

func TestEncode_PlaceLimitOrder_Golden(t *testing.T) {
	env := Encode(PlaceLimitOrder{
		AssetID:     5,
		IsBuy:       true,
		LimitPrice:  100,
		Size:        1,
		ReduceOnly:  false,
		TimeInForce: TifGtc,
	}, 1)

	want := []byte{
		0x01, 0x00, 0x00, 0x01, // version, discriminator
		0x00, 0x00, 0x00, 0x05, // assetId
		0x01,                                           // isBuy
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x64, // limitPrice
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, // size
		0x00, // reduceOnly
		0x02, // tif GTC
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // cloid (absent)
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, []byte(env))
	assert.Len(t, env, 43)
}

func TestEncode_AddApiWallet_Golden(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	env := Encode(AddApiWallet{Address: addr, WalletName: "ops"}, 1)

	want := []byte{0x01, 0x00, 0x00, 0x09}
	want = append(want, addr.Bytes()...)
	want = append(want, 0x00, 0x00, 0x00, 0x03, 'o', 'p', 's')
	assert.Equal(t, want, []byte(env))
}

func TestEncode_SpotSend_Golden(t *testing.T) {
	sys := common.HexToAddress("0x2222222222222222222222222222222222222222")
	env := Encode(BridgeToRemote{SystemAddress: sys, TokenID: 1105, WeiAmount: 1_000_000}, 1)

	want := []byte{0x01, 0x00, 0x00, 0x06}
	want = append(want, sys.Bytes()...)
	want = append(want,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x51, // tokenId 1105
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x42, 0x40, // weiAmount 1e6
	)
	assert.Equal(t, want, []byte(env))

	// DirectSpotTransfer with identical fields yields identical bytes: the
	// variants differ in recipient semantics, not in wire layout.
	direct := Encode(DirectSpotTransfer{To: sys, TokenID: 1105, WeiAmount: 1_000_000}, 1)
	assert.Equal(t, []byte(env), []byte(direct))
}

func TestEncode_UsdClassTransfer_Golden(t *testing.T) {
	env := Encode(UsdClassTransfer{Notional: 250, ToPerp: true}, 2)

	want := []byte{
		0x02, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfa,
		0x01,
	}
	assert.Equal(t, want, []byte(env))
}

func TestEncode_CloidEncoding(t *testing.T) {
	cloid, err := ParseCloid("0x000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	withCloid := Encode(PlaceLimitOrder{Size: 1, TimeInForce: TifAlo, ClientOrderID: mo.Some(cloid)}, 1)
	assert.Equal(t, cloid[:], withCloid.Payload()[23:])

	without := Encode(PlaceLimitOrder{Size: 1, TimeInForce: TifAlo}, 1)
	assert.Equal(t, make([]byte, 16), without.Payload()[23:])
}

func TestEnvelope_Accessors(t *testing.T) {
	env := Encode(UsdClassTransfer{Notional: 1}, 7)
	assert.Equal(t, uint8(7), env.Version())
	assert.Equal(t, ActionIDUsdClassTransfer, env.ActionID())
	assert.Len(t, env.Payload(), 9)
}
