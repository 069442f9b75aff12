package handler

import (
	"math"
	"strconv"
	"time"

	"core-bridge-controller/internal/adapter/http/dto"
	"core-bridge-controller/internal/adapter/http/middleware"
	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/pkg/apperror"
	"core-bridge-controller/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles the audit log endpoints.
type AuditHandler struct {
	auditSvc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// ListEvents handles GET /api/v1/audit/events.
func (h *AuditHandler) ListEvents(c *gin.Context) {
	if _, ok := middleware.GetPrincipal(c); !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.AuditListParams{
		Page:     page,
		PageSize: pageSize,
	}
	if n := c.Query("name"); n != "" {
		name := domain.EventName(n)
		params.Name = &name
	}

	events, total, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuditEventResponse, 0, len(events))
	for i := range events {
		items = append(items, toAuditEventResponse(&events[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.AuditListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// toAuditEventResponse converts a domain.AuditEvent to DTO.
func toAuditEventResponse(ev *domain.AuditEvent) dto.AuditEventResponse {
	return dto.AuditEventResponse{
		ID:        ev.ID.String(),
		Name:      string(ev.Name),
		Actor:     ev.Actor.Hex(),
		TxHash:    ev.TxHash,
		Fields:    ev.Fields,
		CreatedAt: ev.CreatedAt.Format(time.RFC3339),
	}
}
