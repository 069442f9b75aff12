package handler

import (
	"core-bridge-controller/internal/adapter/http/dto"
	"core-bridge-controller/internal/adapter/http/middleware"
	"core-bridge-controller/internal/core/actions"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/pkg/apperror"
	"core-bridge-controller/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/samber/mo"
)

// ActionHandler handles the dispatch trigger endpoints: each one builds a
// typed action, encodes it and submits the envelope to the dispatch gateway.
type ActionHandler struct {
	controllerSvc ports.ControllerService
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(controllerSvc ports.ControllerService) *ActionHandler {
	return &ActionHandler{controllerSvc: controllerSvc}
}

// AddAPIWallet handles POST /api/v1/actions/api-wallets.
func (h *ActionHandler) AddAPIWallet(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.AddAPIWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.controllerSvc.AddApiWallet(c.Request.Context(), ports.AddApiWalletRequest{
		Caller:  principal,
		Address: common.HexToAddress(req.Wallet),
		Name:    req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toDispatchResponse(result))
}

// BridgeToRemote handles POST /api/v1/actions/bridge.
func (h *ActionHandler) BridgeToRemote(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.BridgeToRemoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.controllerSvc.BridgeToRemote(c.Request.Context(), ports.BridgeToRemoteRequest{
		Caller:    principal,
		TokenID:   req.TokenID,
		WeiAmount: req.WeiAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toDispatchResponse(result))
}

// DirectSpotTransfer handles POST /api/v1/actions/spot-transfers.
func (h *ActionHandler) DirectSpotTransfer(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.SpotTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.controllerSvc.DirectSpotTransfer(c.Request.Context(), ports.SpotTransferRequest{
		Caller:    principal,
		To:        common.HexToAddress(req.To),
		TokenID:   req.TokenID,
		WeiAmount: req.WeiAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toDispatchResponse(result))
}

// PlaceLimitOrder handles POST /api/v1/actions/orders.
func (h *ActionHandler) PlaceLimitOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.LimitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tif, err := actions.ParseTimeInForce(req.TimeInForce)
	if err != nil {
		response.Error(c, apperror.ErrInvalidTimeInForce())
		return
	}

	cloid := mo.None[actions.Cloid]()
	if req.ClientOrderID != nil {
		parsed, err := actions.ParseCloid(*req.ClientOrderID)
		if err != nil {
			response.Error(c, apperror.ErrInvalidOrder())
			return
		}
		cloid = mo.Some(parsed)
	}

	result, err := h.controllerSvc.PlaceLimitOrder(c.Request.Context(), ports.LimitOrderRequest{
		Caller:        principal,
		AssetID:       req.AssetID,
		IsBuy:         req.IsBuy,
		LimitPrice:    req.LimitPrice,
		Size:          req.Size,
		ReduceOnly:    req.ReduceOnly,
		TimeInForce:   tif,
		ClientOrderID: cloid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toDispatchResponse(result))
}

// CrossMarketTransfer handles POST /api/v1/actions/class-transfers.
func (h *ActionHandler) CrossMarketTransfer(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.CrossMarketTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.controllerSvc.CrossMarketTransfer(c.Request.Context(), ports.CrossMarketTransferRequest{
		Caller:   principal,
		Notional: req.Notional,
		ToPerp:   req.ToPerp,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toDispatchResponse(result))
}

// toDispatchResponse converts a ports.DispatchResult to DTO.
func toDispatchResponse(res *ports.DispatchResult) dto.DispatchResponse {
	return dto.DispatchResponse{
		Action:       res.Action,
		ActionID:     res.ActionID.Hex(),
		EnvelopeSize: res.EnvelopeSize,
		TxHash:       res.TxHash,
	}
}
