package handlers

import (
	"context"
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StageHandler struct {
	usecase usecase.IProductionUseCase
}

func NewStageHandler(uc usecase.IProductionUseCase) *StageHandler {
	return &StageHandler{usecase: uc}
}

func (h *StageHandler) AddStage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	s, err := h.usecase.AddStage(c.Request.Context(), actor, c.Param("codigo"), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStage(s))
}

func (h *StageHandler) ListStages(c *gin.Context) {
	stages, err := h.usecase.ListStages(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStages(stages))
}

func (h *StageHandler) AdvanceStage(c *gin.Context) {
	h.transition(c, h.usecase.AdvanceStage)
}

func (h *StageHandler) CompleteStage(c *gin.Context) {
	h.transition(c, h.usecase.CompleteStage)
}

func (h *StageHandler) AssignEmployee(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var payload request.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	s, err := h.usecase.AssignEmployeeToStage(c.Request.Context(), actor, c.Param("codigo"), idx, payload.FuncionarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStage(s))
}

func (h *StageHandler) transition(
	c *gin.Context,
	move func(ctx context.Context, actor entities.Employee, code string, idx int) (entities.Stage, error),
) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}

	s, err := move(c.Request.Context(), actor, c.Param("codigo"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStage(s))
}
