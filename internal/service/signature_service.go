package service

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ECDSASignatureService implements ports.SignatureService using secp256k1
// ECDSA over the Keccak-256 hash of the canonical payload. Signatures are
// 65 bytes [R || S || V] hex-encoded, the recovery byte accepted as 0/1
// or 27/28.
type ECDSASignatureService struct{}

// NewECDSASignatureService creates a new ECDSA signature service.
func NewECDSASignatureService() *ECDSASignatureService {
	return &ECDSASignatureService{}
}

// Sign computes the secp256k1 signature of Keccak256(payload) with key.
// Returns lowercase hex without a 0x prefix.
func (s *ECDSASignatureService) Sign(key *ecdsa.PrivateKey, payload string) (string, error) {
	digest := crypto.Keccak256([]byte(payload))
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}
	return hex.EncodeToString(sig), nil
}

// Recover returns the address whose key produced signature over payload.
// Verification is recover-and-compare: the caller checks the returned
// address against the expected principal.
func (s *ECDSASignatureService) Recover(payload, signature string) (common.Address, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}
	if len(raw) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(raw))
	}
	// Ethereum tooling emits V as 27/28, crypto.SigToPub wants 0/1.
	if raw[64] >= 27 {
		raw[64] -= 27
	}
	digest := crypto.Keccak256([]byte(payload))
	pub, err := crypto.SigToPub(digest, raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD|PATH|TIMESTAMP|NONCE|BODY
func (s *ECDSASignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", method, path, timestamp, nonce, body)
}
