package handlers

import (
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	audit usecase.IAuditUseCase
}

func NewAuditHandler(audit usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ListRecords godoc
// @Summary   Read the audit trail (ADMIN)
// @Tags      audit
// @Produce   json
// @Security  Bearer
// @Param     action    query     string  false  "Action, e.g. REGISTER_DENIED"
// @Param     actorId   query     string  false  "Actor id"
// @Param     targetId  query     string  false  "Target id"
// @Success   200       {array}   response.AuditRecordResponse
// @Failure   403       {object}  pkg.HTTPError
// @Router    /audit [get]
func (h *AuditHandler) ListRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var query request.AuditQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	records, err := h.audit.List(c.Request.Context(), actor, query.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}
