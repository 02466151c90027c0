package handlers

import (
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler manages employee accounts. Every call is attributed to the
// authenticated actor, so refusals land in the audit trail.
type UserHandler struct {
	identity usecase.IIdentityUseCase
}

func NewUserHandler(identity usecase.IIdentityUseCase) *UserHandler {
	return &UserHandler{identity: identity}
}

// ListUsers godoc
// @Summary   List users (ADMIN)
// @Tags      users
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   response.UserResponse
// @Failure   403  {object}  pkg.HTTPError
// @Router    /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	users, err := h.identity.ListUsersByActor(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(users))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	created, err := h.identity.RegisterByActor(c.Request.Context(), payload.ToEntity(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	updated := payload.ToEntity()
	updated.ID = c.Param("id")
	saved, err := h.identity.UpdateUser(c.Request.Context(), updated, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(saved))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.identity.DeleteUser(c.Request.Context(), c.Param("id"), actor.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Usuário excluído"))
}
