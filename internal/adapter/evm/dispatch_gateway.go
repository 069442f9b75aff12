package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// sendRawActionSelector is the 4-byte selector of sendRawAction(bytes),
// the single operation the dispatch endpoint exposes.
var sendRawActionSelector = crypto.Keccak256([]byte("sendRawAction(bytes)"))[:4]

// CoreWriterGateway implements ports.DispatchGateway against the fixed
// dispatch endpoint contract. The endpoint interprets the submitted bytes
// by their discriminator; this side only delivers them.
type CoreWriterGateway struct {
	client *Client
	target common.Address
	log    zerolog.Logger
}

// NewCoreWriterGateway creates a gateway bound to the dispatch endpoint at
// target.
func NewCoreWriterGateway(client *Client, target common.Address, log zerolog.Logger) *CoreWriterGateway {
	return &CoreWriterGateway{client: client, target: target, log: log}
}

// Submit delivers the envelope bytes to the dispatch endpoint and returns
// the hash of the including transaction.
func (g *CoreWriterGateway) Submit(ctx context.Context, raw []byte) (string, error) {
	txHash, err := g.client.sendTx(ctx, g.target, nil, buildSendRawActionCalldata(raw))
	if err != nil {
		return "", fmt.Errorf("dispatch submit: %w", err)
	}

	g.log.Debug().
		Str("tx_hash", txHash).
		Int("envelope_bytes", len(raw)).
		Msg("envelope dispatched")

	return txHash, nil
}

// buildSendRawActionCalldata ABI-encodes a sendRawAction(bytes) call:
// selector, offset word (0x20), length word, then the payload right-padded
// to a 32-byte boundary.
func buildSendRawActionCalldata(raw []byte) []byte {
	padded := (len(raw) + 31) / 32 * 32
	data := make([]byte, 0, 4+64+padded)
	data = append(data, sendRawActionSelector...)
	data = append(data, common.LeftPadBytes(big.NewInt(0x20).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(big.NewInt(int64(len(raw))).Bytes(), 32)...)
	data = append(data, common.RightPadBytes(raw, padded)...)
	return data
}
