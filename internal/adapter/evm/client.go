package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"core-bridge-controller/config"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client wraps the RPC connection together with the operator identity all
// outbound transactions are signed with.
type Client struct {
	eth            *ethclient.Client
	chainID        *big.Int
	key            *ecdsa.PrivateKey
	operator       common.Address
	receiptTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewClient dials the RPC endpoint, verifies the chain id against config,
// and derives the operator address from the configured private key.
func NewClient(ctx context.Context, cfg config.EVMConfig, log zerolog.Logger) (*Client, error) {
	if cfg.OperatorKey == "" {
		return nil, errors.New("operator key is required")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid operator key: %w", err)
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", cfg.RPCURL, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("fetching chain id: %w", err)
	}
	if cfg.ChainID != 0 && chainID.Int64() != cfg.ChainID {
		eth.Close()
		return nil, fmt.Errorf("chain id mismatch: node reports %d, config expects %d", chainID.Int64(), cfg.ChainID)
	}

	operator := crypto.PubkeyToAddress(key.PublicKey)

	log.Info().
		Str("rpc_url", cfg.RPCURL).
		Int64("chain_id", chainID.Int64()).
		Str("operator", operator.Hex()).
		Msg("EVM client connected")

	return &Client{
		eth:            eth,
		chainID:        chainID,
		key:            key,
		operator:       operator,
		receiptTimeout: cfg.ReceiptTimeout,
		pollInterval:   cfg.PollInterval,
		log:            log,
	}, nil
}

// Operator returns the address transactions are sent from.
func (c *Client) Operator() common.Address {
	return c.operator
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// sendTx builds, signs and broadcasts a transaction, then waits for its
// inclusion. A reverted transaction is an error.
func (c *Client) sendTx(ctx context.Context, to common.Address, value *big.Int, data []byte) (string, error) {
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.operator)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	tipCap, err := c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas tip: %w", err)
	}
	head, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("fetch head: %w", err)
	}
	feeCap := new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.operator,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	tx, err := types.SignNewTx(c.key, types.LatestSignerForChainID(c.chainID), &types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &to,
		Value:     value,
		Data:      data,
	})
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	c.log.Debug().
		Str("tx_hash", tx.Hash().Hex()).
		Str("to", to.Hex()).
		Uint64("nonce", nonce).
		Msg("transaction broadcast")

	receipt, err := c.waitMined(ctx, tx.Hash())
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return tx.Hash().Hex(), nil
}

// waitMined polls for the receipt until the transaction lands or the
// configured timeout expires.
func (c *Client) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			c.log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt lookup failed, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
