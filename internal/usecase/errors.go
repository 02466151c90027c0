package usecase

import "errors"

var (
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrTestNotFound     = errors.New("test not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrActorNotFound    = errors.New("actor not found")

	ErrDuplicateAircraft = errors.New("aircraft codigo already exists")
	ErrDuplicateUser     = errors.New("user already exists")

	ErrPermissionDenied   = errors.New("permission denied")
	ErrLastAdminProtected = errors.New("the last administrator cannot be demoted or removed")
	ErrReservedAccount    = errors.New("the system account cannot be changed")

	ErrPreviousStageNotCompleted = errors.New("previous stage not completed")
	ErrFailedTestsPending        = errors.New("failed tests pending: register a new passing test before completing the aircraft")

	ErrRenderFailure = errors.New("report rendering failed")
	ErrAuditAppend   = errors.New("audit append failed")

	ErrInvalidAircraft = errors.New("invalid aircraft")
	ErrInvalidPart     = errors.New("invalid part")
	ErrInvalidStage    = errors.New("invalid stage")
	ErrInvalidTest     = errors.New("invalid test")
	ErrInvalidEmployee = errors.New("invalid employee")
)
