package handlers

import (
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PartHandler struct {
	usecase usecase.IProductionUseCase
}

func NewPartHandler(uc usecase.IProductionUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

func (h *PartHandler) AddPart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	code := c.Param("codigo")
	p, err := h.usecase.AddPart(c.Request.Context(), actor, code, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.withIndex(c, code, p))
}

func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.usecase.ListParts(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

func (h *PartHandler) GetPart(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	p, err := h.usecase.GetPart(c.Request.Context(), c.Param("codigo"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(idx, p))
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var payload request.PartUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.UpdatePart(c.Request.Context(), actor, c.Param("codigo"), idx, payload.ToChanges())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(idx, p))
}

func (h *PartHandler) UpdatePartStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var payload request.PartStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.UpdatePartStatus(c.Request.Context(), actor, c.Param("codigo"), idx, payload.ToStatus())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(idx, p))
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeletePart(c.Request.Context(), actor, c.Param("codigo"), idx); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Peça excluída"))
}

// withIndex looks up where the new part landed. Idx is -1 when it is no
// longer listed.
func (h *PartHandler) withIndex(c *gin.Context, code string, created entities.Part) response.PartResponse {
	parts, err := h.usecase.ListParts(c.Request.Context(), code)
	if err == nil {
		for i, p := range parts {
			if p.ID == created.ID {
				return response.FromPart(i, p)
			}
		}
	}
	return response.FromPart(-1, created)
}
