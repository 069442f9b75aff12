package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Well-known ERC20 selectors.
var (
	transferSelector  = common.Hex2Bytes("a9059cbb") // transfer(address,uint256)
	balanceOfSelector = common.Hex2Bytes("70a08231") // balanceOf(address)
)

// Mover implements ports.AssetMover over the operator account's custody.
// Token transfers are plain transfer() calls; a revert fails the receipt
// check in sendTx, which is the failure signal available off-chain.
type Mover struct {
	client *Client
	log    zerolog.Logger
}

// NewMover creates an asset mover bound to the client's operator account.
func NewMover(client *Client, log zerolog.Logger) *Mover {
	return &Mover{client: client, log: log}
}

// TransferNative sends amount of the native asset to the recipient.
func (m *Mover) TransferNative(ctx context.Context, to common.Address, amount *big.Int) (string, error) {
	txHash, err := m.client.sendTx(ctx, to, amount, nil)
	if err != nil {
		return "", fmt.Errorf("native transfer: %w", err)
	}
	return txHash, nil
}

// TransferToken calls transfer(to, amount) on the token contract.
func (m *Mover) TransferToken(ctx context.Context, token, to common.Address, amount *big.Int) (string, error) {
	txHash, err := m.client.sendTx(ctx, token, nil, buildTransferCalldata(to, amount))
	if err != nil {
		return "", fmt.Errorf("token transfer: %w", err)
	}
	return txHash, nil
}

// NativeBalance returns the operator account's native balance.
func (m *Mover) NativeBalance(ctx context.Context) (*big.Int, error) {
	balance, err := m.client.eth.BalanceAt(ctx, m.client.operator, nil)
	if err != nil {
		return nil, fmt.Errorf("native balance: %w", err)
	}
	return balance, nil
}

// TokenBalance calls balanceOf(operator) on the token contract.
func (m *Mover) TokenBalance(ctx context.Context, token common.Address) (*big.Int, error) {
	result, err := m.client.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: buildBalanceOfCalldata(m.client.operator),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf call: %w", err)
	}
	return new(big.Int).SetBytes(result), nil
}

func buildTransferCalldata(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, 4+64)
	data = append(data, transferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

func buildBalanceOfCalldata(owner common.Address) []byte {
	data := make([]byte, 0, 4+32)
	data = append(data, balanceOfSelector...)
	data = append(data, common.LeftPadBytes(owner.Bytes(), 32)...)
	return data
}
