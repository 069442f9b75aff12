package handler

import (
	"core-bridge-controller/internal/adapter/http/dto"
	"core-bridge-controller/internal/adapter/http/middleware"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/pkg/apperror"
	"core-bridge-controller/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// ControllerHandler handles the configuration endpoints.
type ControllerHandler struct {
	controllerSvc ports.ControllerService
}

// NewControllerHandler creates a new ControllerHandler.
func NewControllerHandler(controllerSvc ports.ControllerService) *ControllerHandler {
	return &ControllerHandler{controllerSvc: controllerSvc}
}

// GetState handles GET /api/v1/controller/state.
func (h *ControllerHandler) GetState(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	state, err := h.controllerSvc.GetState(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ControllerStateResponse{
		Owner:         state.Owner.Hex(),
		SystemAddress: state.SystemAddress.Hex(),
	}
	if keeper, present := state.Keeper.Get(); present {
		s := keeper.Hex()
		resp.Keeper = &s
	}

	response.OK(c, resp)
}

// SetSystemAddress handles PUT /api/v1/controller/system-address.
func (h *ControllerHandler) SetSystemAddress(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.controllerSvc.SetSystemAddress(c.Request.Context(), principal, common.HexToAddress(req.Address)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "system address updated"})
}

// SetKeeper handles PUT /api/v1/controller/keeper. The zero address clears
// the keeper.
func (h *ControllerHandler) SetKeeper(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.controllerSvc.SetKeeper(c.Request.Context(), principal, common.HexToAddress(req.Address)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "keeper updated"})
}

// TransferOwnership handles PUT /api/v1/controller/ownership.
func (h *ControllerHandler) TransferOwnership(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.controllerSvc.TransferOwnership(c.Request.Context(), principal, common.HexToAddress(req.Address)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "ownership transferred"})
}
