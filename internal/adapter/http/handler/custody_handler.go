package handler

import (
	"math/big"

	"core-bridge-controller/internal/adapter/http/dto"
	"core-bridge-controller/internal/adapter/http/middleware"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/pkg/apperror"
	"core-bridge-controller/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// CustodyHandler handles the direct asset movement endpoints.
type CustodyHandler struct {
	controllerSvc ports.ControllerService
}

// NewCustodyHandler creates a new CustodyHandler.
func NewCustodyHandler(controllerSvc ports.ControllerService) *CustodyHandler {
	return &CustodyHandler{controllerSvc: controllerSvc}
}

// BridgeToCore handles POST /api/v1/custody/bridge.
func (h *CustodyHandler) BridgeToCore(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.BridgeToCoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.controllerSvc.BridgeToCore(c.Request.Context(), ports.BridgeToCoreRequest{
		Caller: principal,
		Token:  parseToken(req.Token),
		Amount: amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// Withdraw handles POST /api/v1/custody/withdrawals.
func (h *CustodyHandler) Withdraw(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.controllerSvc.WithdrawTo(c.Request.Context(), ports.WithdrawRequest{
		Caller: principal,
		To:     common.HexToAddress(req.To),
		Token:  parseToken(req.Token),
		Amount: amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// EmergencyWithdraw handles POST /api/v1/custody/emergency-withdrawal.
// An absent amount sweeps the asset's full balance to the owner.
func (h *CustodyHandler) EmergencyWithdraw(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.EmergencyWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var amount *big.Int
	if req.Amount != nil {
		parsed, ok := new(big.Int).SetString(*req.Amount, 10)
		if !ok {
			response.Error(c, apperror.ErrInvalidAmount())
			return
		}
		amount = parsed
	}

	result, err := h.controllerSvc.EmergencyWithdraw(c.Request.Context(), ports.EmergencyWithdrawRequest{
		Caller: principal,
		Token:  parseToken(req.Token),
		Amount: amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// parseToken maps an optional token field to an address. Empty means the
// native asset (zero address).
func parseToken(s string) common.Address {
	if s == "" {
		return common.Address{}
	}
	return common.HexToAddress(s)
}

// toTransferResponse converts a ports.TransferResult to DTO.
func toTransferResponse(res *ports.TransferResult) dto.TransferResponse {
	return dto.TransferResponse{
		TxHash: res.TxHash,
		To:     res.To.Hex(),
		Token:  res.Token.Hex(),
		Amount: res.Amount.String(),
	}
}
