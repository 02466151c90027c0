package handlers

import (
	"net/http"
	"time"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/adapter/http/middleware"
	"aerocode/internal/domain/entities"
	"aerocode/internal/infrastructure/auth"
	"aerocode/internal/usecase"
	"aerocode/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)

// SessionTokens is satisfied by *auth.TokenManager.
type SessionTokens interface {
	Issue(e entities.Employee) (string, time.Time, error)
	Revoke(claims *auth.Claims)
}

var _ SessionTokens = (*auth.TokenManager)(nil)

type AuthHandler struct {
	identity usecase.IIdentityUseCase
	tokens   SessionTokens
}

func NewAuthHandler(identity usecase.IIdentityUseCase, tokens SessionTokens) *AuthHandler {
	return &AuthHandler{identity: identity, tokens: tokens}
}

// Login godoc
// @Summary      Authenticate
// @Description  Exchanges usuario/senha for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.LoginResponse
// @Failure      401          {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	user, ok, err := h.identity.Authenticate(c.Request.Context(), payload.Usuario, payload.Senha)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		respondAppError(c, errInvalidCredentials)
		return
	}

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewLoginResponse(token, expiresAt, user))
}

// Logout revokes the token used on this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims, ok := middleware.ClaimsFromContext(c); ok {
		h.tokens.Revoke(claims)
	}
	c.JSON(http.StatusOK, response.Success(""))
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(actor))
}
