package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"aerocode/internal/adapter/http/middleware"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"
	"aerocode/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidIndex   = pkg.NewDomainErrorSimple("INVALID_INDEX", "Index must be a non-negative integer", http.StatusBadRequest)
	errNoActor        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization is required", http.StatusUnauthorized)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAircraftNotFound):
		return pkg.NewDomainErrorSimple("AIRCRAFT_NOT_FOUND", "Aircraft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTestNotFound):
		return pkg.NewDomainErrorSimple("TEST_NOT_FOUND", "Test not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActorNotFound):
		return pkg.NewDomainErrorSimple("ACTOR_NOT_FOUND", "Acting user not found", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrDuplicateAircraft):
		return pkg.NewDomainErrorSimple("AIRCRAFT_ALREADY_EXISTS", "An aircraft with this code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateUser):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "A user with this id or username already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrLastAdminProtected):
		return pkg.NewDomainErrorSimple("LAST_ADMIN_PROTECTED", "The last administrator cannot be removed or demoted", http.StatusConflict)
	case errors.Is(err, usecase.ErrReservedAccount):
		return pkg.NewDomainErrorSimple("RESERVED_ACCOUNT", "The system account cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPreviousStageNotCompleted):
		return pkg.NewDomainErrorSimple("PREVIOUS_STAGE_NOT_COMPLETED", "The previous stage must be completed first", http.StatusConflict)
	case errors.Is(err, usecase.ErrFailedTestsPending):
		return pkg.NewDomainErrorSimple("FAILED_TESTS_PENDING", "There are failed tests pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrRenderFailure):
		return pkg.NewDomainError("REPORT_FAILED", "Report generation failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidAircraft),
		errors.Is(err, usecase.ErrInvalidPart),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidTest),
		errors.Is(err, usecase.ErrInvalidEmployee):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentActor reads the actor set by the auth middleware and writes a 401
// when it is missing.
func currentActor(c *gin.Context) (entities.Employee, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || actor.ID == "" {
		respondAppError(c, errNoActor)
		return entities.Employee{}, false
	}
	return actor, true
}

func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 0 {
		respondAppError(c, errInvalidIndex)
		return 0, false
	}
	return idx, true
}
