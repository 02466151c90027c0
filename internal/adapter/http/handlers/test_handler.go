package handlers

import (
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	usecase usecase.IProductionUseCase
}

func NewTestHandler(uc usecase.IProductionUseCase) *TestHandler {
	return &TestHandler{usecase: uc}
}

func (h *TestHandler) RegisterTest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.TestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	code := c.Param("codigo")
	created, err := h.usecase.RegisterTest(c.Request.Context(), actor, code, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	idx := -1
	if tests, err := h.usecase.ListTests(c.Request.Context(), code); err == nil {
		for i, t := range tests {
			if t.ID == created.ID {
				idx = i
				break
			}
		}
	}
	c.JSON(http.StatusCreated, response.FromTest(idx, created))
}

func (h *TestHandler) ListTests(c *gin.Context) {
	tests, err := h.usecase.ListTests(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTests(tests))
}

func (h *TestHandler) GetTest(c *gin.Context) {
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	t, err := h.usecase.GetTest(c.Request.Context(), c.Param("codigo"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTest(idx, t))
}

func (h *TestHandler) UpdateTest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var payload request.TestUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	t, err := h.usecase.UpdateTest(c.Request.Context(), actor, c.Param("codigo"), idx, payload.ToChanges())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTest(idx, t))
}

func (h *TestHandler) DeleteTest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteTest(c.Request.Context(), actor, c.Param("codigo"), idx); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Teste excluído"))
}
