package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"aerocode/internal/domain/entities"
	"aerocode/internal/infrastructure/auth"
	"aerocode/internal/usecase"
	"aerocode/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextActor   = "actor"
	ContextActorID = "actor_id"
	ContextClaims  = "claims"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errUnknownActor = pkg.NewDomainErrorSimple("ACTOR_NOT_FOUND", "Session user no longer exists", http.StatusUnauthorized)
)

// ActorResolver loads the account behind a verified token.
type ActorResolver interface {
	GetUserByID(ctx context.Context, id string) (entities.Employee, error)
}

// JWTAuth verifies the bearer token and loads the current account as the
// request actor. Permission level always comes from storage, not from the
// token, so a demotion takes effect on the next request.
func JWTAuth(tokens *auth.TokenManager, users ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abort(c, errMissingToken)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abort(c, errInvalidToken)
			return
		}

		actor, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				abort(c, errUnknownActor)
				return
			}
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			_ = c.Error(err)
			abort(c, appErr)
			return
		}

		c.Set(ContextActor, actor)
		c.Set(ContextActorID, actor.ID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ActorFromContext returns the actor stored by JWTAuth.
func ActorFromContext(c *gin.Context) (entities.Employee, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return entities.Employee{}, false
	}
	actor, ok := v.(entities.Employee)
	return actor, ok
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Query("token")
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
