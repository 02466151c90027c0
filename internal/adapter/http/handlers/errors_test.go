package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"aerocode/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrAircraftNotFound, http.StatusNotFound, "AIRCRAFT_NOT_FOUND"},
		{usecase.ErrPartNotFound, http.StatusNotFound, "PART_NOT_FOUND"},
		{usecase.ErrStageNotFound, http.StatusNotFound, "STAGE_NOT_FOUND"},
		{usecase.ErrTestNotFound, http.StatusNotFound, "TEST_NOT_FOUND"},
		{usecase.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{usecase.ErrActorNotFound, http.StatusUnauthorized, "ACTOR_NOT_FOUND"},
		{usecase.ErrDuplicateAircraft, http.StatusConflict, "AIRCRAFT_ALREADY_EXISTS"},
		{usecase.ErrDuplicateUser, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{usecase.ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
		{usecase.ErrLastAdminProtected, http.StatusConflict, "LAST_ADMIN_PROTECTED"},
		{usecase.ErrReservedAccount, http.StatusConflict, "RESERVED_ACCOUNT"},
		{usecase.ErrPreviousStageNotCompleted, http.StatusConflict, "PREVIOUS_STAGE_NOT_COMPLETED"},
		{usecase.ErrFailedTestsPending, http.StatusConflict, "FAILED_TESTS_PENDING"},
		{fmt.Errorf("%w: disk full", usecase.ErrRenderFailure), http.StatusBadGateway, "REPORT_FAILED"},
		{fmt.Errorf("%w: modelo is required", usecase.ErrInvalidAircraft), http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidEmployee, http.StatusBadRequest, "INVALID_REQUEST"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("expected %d %s, got %d %s", tt.status, tt.code, got.HTTPStatus, got.Code)
			}
		})
	}

	if got := mapError(fmt.Errorf("%w: modelo is required", usecase.ErrInvalidAircraft)); got.Message != "invalid aircraft: modelo is required" {
		t.Fatalf("expected validation detail in message, got %q", got.Message)
	}
}
