package ports

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DispatchGateway is the single external endpoint that accepts encoded
// action envelopes. The controller knows nothing about how the gateway
// interprets the bytes beyond the discriminator contract.
type DispatchGateway interface {
	// Submit sends the raw envelope bytes and blocks until the submission
	// is final. Returns the transaction hash of the submission.
	Submit(ctx context.Context, raw []byte) (string, error)
}

// AssetMover performs direct custody movements from the controller's own
// account, bypassing the action protocol. All transfers block until final
// and return the transaction hash.
type AssetMover interface {
	TransferNative(ctx context.Context, to common.Address, amount *big.Int) (string, error)
	TransferToken(ctx context.Context, token, to common.Address, amount *big.Int) (string, error)
	NativeBalance(ctx context.Context) (*big.Int, error)
	TokenBalance(ctx context.Context, token common.Address) (*big.Int, error)
}
