package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := AddAPIWalletRequest{
		Wallet: "  0x1111111111111111111111111111111111111111  ",
		Name:   " trading-bot ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "0x1111111111111111111111111111111111111111", req.Wallet)
	assert.Equal(t, "trading-bot", req.Name)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := AddAPIWalletRequest{
		Wallet: "0x1111111111111111111111111111111111111111",
		Name:   "bot <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Name, "&lt;script&gt;")
	assert.NotContains(t, req.Name, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	amount := "  1000000  "
	req := EmergencyWithdrawRequest{
		Token:  "0x2222222222222222222222222222222222222222",
		Amount: &amount,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "1000000", *req.Amount)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := EmergencyWithdrawRequest{
		Token:  "0x2222222222222222222222222222222222222222",
		Amount: nil,
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.Amount)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"bot-001",
		"BOT_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"bot 001",     // space
		"bot<001>",    // angle brackets
		"bot;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"bot\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestBigAmount_Valid(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"1000000000000000000",
		"340282366920938463463374607431768211456", // > MaxUint128
	}
	for _, tc := range cases {
		assert.True(t, bigAmountRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestBigAmount_Invalid(t *testing.T) {
	cases := []string{
		"",
		"-1",
		"1.5",
		"1e18",
		"0x10",
		" 100",
	}
	for _, tc := range cases {
		assert.False(t, bigAmountRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestSanitizeStruct_WithdrawRequest(t *testing.T) {
	req := WithdrawRequest{
		To:     "  0x3333333333333333333333333333333333333333  ",
		Token:  " 0x4444444444444444444444444444444444444444 ",
		Amount: " 500 ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "0x3333333333333333333333333333333333333333", req.To)
	assert.Equal(t, "0x4444444444444444444444444444444444444444", req.Token)
	assert.Equal(t, "500", req.Amount)
}
