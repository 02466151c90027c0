package usecase

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	"aerocode/internal/usecase/interfaces"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AircraftChanges, PartChanges and TestChanges carry partial updates; nil
// fields are left untouched.
type AircraftChanges struct {
	Model    *string
	Type     *entities.AircraftType
	Capacity *int
	RangeKm  *float64
}

type PartChanges struct {
	Name     *string
	Type     *entities.PartType
	Supplier *string
	Status   *entities.PartStatus
}

type TestChanges struct {
	Type   *entities.TestType
	Result *entities.TestResult
}

// IProductionUseCase runs the aircraft production workflow.
//
// Every mutation takes the acting employee, checks the access policy before
// touching anything and appends one audit record: the plain action on success
// or its _DENIED variant on refusal. Parts, stages and tests are addressed by
// their position in the aircraft's list.
//
// Stage rules:
//   - advancing stage i>0 requires stage i-1 to be COMPLETED
//   - completing the last stage requires no test type whose latest result is FAILED
type IProductionUseCase interface {
	RegisterAircraft(ctx context.Context, actor entities.Employee, a entities.Aircraft) (entities.Aircraft, error)
	UpdateAircraft(ctx context.Context, actor entities.Employee, code string, changes AircraftChanges) (entities.Aircraft, error)
	DeleteAircraft(ctx context.Context, actor entities.Employee, code string) error
	ListAircraft(ctx context.Context) ([]entities.Aircraft, error)
	GetAircraft(ctx context.Context, code string) (entities.Aircraft, error)

	AddPart(ctx context.Context, actor entities.Employee, code string, p entities.Part) (entities.Part, error)
	ListParts(ctx context.Context, code string) ([]entities.Part, error)
	GetPart(ctx context.Context, code string, idx int) (entities.Part, error)
	UpdatePart(ctx context.Context, actor entities.Employee, code string, idx int, changes PartChanges) (entities.Part, error)
	UpdatePartStatus(ctx context.Context, actor entities.Employee, code string, idx int, status entities.PartStatus) (entities.Part, error)
	DeletePart(ctx context.Context, actor entities.Employee, code string, idx int) error

	AddStage(ctx context.Context, actor entities.Employee, code string, s entities.Stage) (entities.Stage, error)
	ListStages(ctx context.Context, code string) ([]entities.Stage, error)
	AdvanceStage(ctx context.Context, actor entities.Employee, code string, idx int) (entities.Stage, error)
	CompleteStage(ctx context.Context, actor entities.Employee, code string, idx int) (entities.Stage, error)
	AssignEmployeeToStage(ctx context.Context, actor entities.Employee, code string, idx int, employeeID string) (entities.Stage, error)

	RegisterTest(ctx context.Context, actor entities.Employee, code string, t entities.Test) (entities.Test, error)
	ListTests(ctx context.Context, code string) ([]entities.Test, error)
	GetTest(ctx context.Context, code string, idx int) (entities.Test, error)
	UpdateTest(ctx context.Context, actor entities.Employee, code string, idx int, changes TestChanges) (entities.Test, error)
	DeleteTest(ctx context.Context, actor entities.Employee, code string, idx int) error

	GenerateReport(ctx context.Context, code string) (string, error)
}

type ProductionUseCase struct {
	aircraft  interfaces.IAircraftRepository
	employees interfaces.IEmployeeRepository
	audit     IAuditUseCase
	policy    interfaces.IAccessPolicy
	renderer  interfaces.IReportRenderer
	logger    *zap.Logger
	locks     *keyedMutex
	now       func() time.Time
}

var _ IProductionUseCase = (*ProductionUseCase)(nil)

func NewProductionUseCase(
	aircraft interfaces.IAircraftRepository,
	employees interfaces.IEmployeeRepository,
	audit IAuditUseCase,
	accessPolicy interfaces.IAccessPolicy,
	renderer interfaces.IReportRenderer,
	logger *zap.Logger,
) *ProductionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionUseCase{
		aircraft:  aircraft,
		employees: employees,
		audit:     audit,
		policy:    accessPolicy,
		renderer:  renderer,
		logger:    logger,
		locks:     newKeyedMutex(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ----- aircraft -----

func (u *ProductionUseCase) RegisterAircraft(ctx context.Context, actor entities.Employee, a entities.Aircraft) (entities.Aircraft, error) {
	a.Code = strings.TrimSpace(a.Code)
	if err := u.authorize(ctx, actor, policy.ObjectAircraft, policy.ActionCreate, entities.AuditAircraftCreate, a.Code); err != nil {
		return entities.Aircraft{}, err
	}
	a.Model = strings.TrimSpace(a.Model)
	if err := validateAircraft(a); err != nil {
		return entities.Aircraft{}, err
	}

	unlock := u.locks.Lock(a.Code)
	defer unlock()

	now := u.now()
	a.Parts = []entities.Part{}
	a.Stages = []entities.Stage{}
	a.Tests = []entities.Test{}
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := u.aircraft.Create(ctx, a)
	if err != nil {
		return entities.Aircraft{}, err
	}
	if !created {
		return entities.Aircraft{}, ErrDuplicateAircraft
	}
	if err := u.record(ctx, actor, entities.AuditAircraftCreate, a.Code); err != nil {
		return entities.Aircraft{}, err
	}
	u.logger.Info("aircraft registered", zap.String("codigo", a.Code), zap.String("actor_id", actor.ID))
	return a, nil
}

func (u *ProductionUseCase) UpdateAircraft(ctx context.Context, actor entities.Employee, code string, changes AircraftChanges) (entities.Aircraft, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectAircraft, policy.ActionUpdate, entities.AuditAircraftUpdate, code); err != nil {
		return entities.Aircraft{}, err
	}
	return u.mutate(ctx, actor, code, entities.AuditAircraftUpdate, func(a *entities.Aircraft) (string, error) {
		if changes.Model != nil {
			a.Model = strings.TrimSpace(*changes.Model)
		}
		if changes.Type != nil {
			a.Type = *changes.Type
		}
		if changes.Capacity != nil {
			a.Capacity = *changes.Capacity
		}
		if changes.RangeKm != nil {
			a.RangeKm = *changes.RangeKm
		}
		return a.Code, validateAircraft(*a)
	})
}

// DeleteAircraft removes the aircraft together with its parts, stages and tests.
func (u *ProductionUseCase) DeleteAircraft(ctx context.Context, actor entities.Employee, code string) error {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectAircraft, policy.ActionDelete, entities.AuditAircraftDelete, code); err != nil {
		return err
	}

	unlock := u.locks.Lock(code)
	defer unlock()

	deleted, err := u.aircraft.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAircraftNotFound
	}
	if err := u.record(ctx, actor, entities.AuditAircraftDelete, code); err != nil {
		return err
	}
	u.logger.Info("aircraft deleted", zap.String("codigo", code), zap.String("actor_id", actor.ID))
	return nil
}

func (u *ProductionUseCase) ListAircraft(ctx context.Context) ([]entities.Aircraft, error) {
	return u.aircraft.List(ctx)
}

func (u *ProductionUseCase) GetAircraft(ctx context.Context, code string) (entities.Aircraft, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Aircraft{}, ErrAircraftNotFound
	}
	a, err := u.aircraft.GetByCode(ctx, code)
	if err != nil {
		return entities.Aircraft{}, err
	}
	if a.Code == "" {
		return entities.Aircraft{}, ErrAircraftNotFound
	}
	return a, nil
}

// ----- parts -----

func (u *ProductionUseCase) AddPart(ctx context.Context, actor entities.Employee, code string, p entities.Part) (entities.Part, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectPart, policy.ActionCreate, entities.AuditPartCreate, code); err != nil {
		return entities.Part{}, err
	}
	p.ID = uuid.NewString()
	p.Name = strings.TrimSpace(p.Name)
	p.Supplier = strings.TrimSpace(p.Supplier)
	if p.Status == "" {
		p.Status = entities.PartStatusInProduction
	}
	if err := validatePart(p); err != nil {
		return entities.Part{}, err
	}

	_, err := u.mutate(ctx, actor, code, entities.AuditPartCreate, func(a *entities.Aircraft) (string, error) {
		a.Parts = append(a.Parts, p)
		return nestedTarget(code, "part", p.ID), nil
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (u *ProductionUseCase) ListParts(ctx context.Context, code string) ([]entities.Part, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return nil, err
	}
	return a.Parts, nil
}

func (u *ProductionUseCase) GetPart(ctx context.Context, code string, idx int) (entities.Part, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return entities.Part{}, err
	}
	p, ok := a.PartAt(idx)
	if !ok {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

func (u *ProductionUseCase) UpdatePart(ctx context.Context, actor entities.Employee, code string, idx int, changes PartChanges) (entities.Part, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectPart, policy.ActionUpdate, entities.AuditPartUpdate, indexTarget(code, "part", idx)); err != nil {
		return entities.Part{}, err
	}
	var out entities.Part
	_, err := u.mutate(ctx, actor, code, entities.AuditPartUpdate, func(a *entities.Aircraft) (string, error) {
		p, ok := a.PartAt(idx)
		if !ok {
			return "", ErrPartNotFound
		}
		if changes.Name != nil {
			p.Name = strings.TrimSpace(*changes.Name)
		}
		if changes.Type != nil {
			p.Type = *changes.Type
		}
		if changes.Supplier != nil {
			p.Supplier = strings.TrimSpace(*changes.Supplier)
		}
		if changes.Status != nil {
			p.Status = *changes.Status
		}
		if err := validatePart(p); err != nil {
			return "", err
		}
		a.ReplacePart(p)
		out = p
		return nestedTarget(code, "part", p.ID), nil
	})
	if err != nil {
		return entities.Part{}, err
	}
	return out, nil
}

func (u *ProductionUseCase) UpdatePartStatus(ctx context.Context, actor entities.Employee, code string, idx int, status entities.PartStatus) (entities.Part, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectPart, policy.ActionStatus, entities.AuditPartStatus, indexTarget(code, "part", idx)); err != nil {
		return entities.Part{}, err
	}
	if !status.Valid() {
		return entities.Part{}, fmt.Errorf("%w: unknown status %q", ErrInvalidPart, status)
	}
	var out entities.Part
	_, err := u.mutate(ctx, actor, code, entities.AuditPartStatus, func(a *entities.Aircraft) (string, error) {
		p, ok := a.PartAt(idx)
		if !ok {
			return "", ErrPartNotFound
		}
		p.Status = status
		a.ReplacePart(p)
		out = p
		return nestedTarget(code, "part", p.ID), nil
	})
	if err != nil {
		return entities.Part{}, err
	}
	return out, nil
}

func (u *ProductionUseCase) DeletePart(ctx context.Context, actor entities.Employee, code string, idx int) error {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectPart, policy.ActionDelete, entities.AuditPartDelete, indexTarget(code, "part", idx)); err != nil {
		return err
	}
	_, err := u.mutate(ctx, actor, code, entities.AuditPartDelete, func(a *entities.Aircraft) (string, error) {
		p, ok := a.PartAt(idx)
		if !ok {
			return "", ErrPartNotFound
		}
		a.RemovePart(p.ID)
		return nestedTarget(code, "part", p.ID), nil
	})
	return err
}

// ----- stages -----

// AddStage appends a PENDING stage whose ordem is the current stage count.
func (u *ProductionUseCase) AddStage(ctx context.Context, actor entities.Employee, code string, s entities.Stage) (entities.Stage, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectStage, policy.ActionCreate, entities.AuditStageCreate, code); err != nil {
		return entities.Stage{}, err
	}
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Stage{}, fmt.Errorf("%w: nome is required", ErrInvalidStage)
	}
	if s.DeadlineDays <= 0 {
		return entities.Stage{}, fmt.Errorf("%w: prazoDias must be positive", ErrInvalidStage)
	}

	var out entities.Stage
	_, err := u.mutate(ctx, actor, code, entities.AuditStageCreate, func(a *entities.Aircraft) (string, error) {
		out = entities.Stage{
			ID:           uuid.NewString(),
			Name:         s.Name,
			DeadlineDays: s.DeadlineDays,
			Status:       entities.StageStatusPending,
			Order:        len(a.Stages),
			EmployeeIDs:  []string{},
		}
		a.Stages = append(a.Stages, out)
		return nestedTarget(code, "stage", out.ID), nil
	})
	if err != nil {
		return entities.Stage{}, err
	}
	return out, nil
}

func (u *ProductionUseCase) ListStages(ctx context.Context, code string) ([]entities.Stage, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return nil, err
	}
	return a.Stages, nil
}

// AdvanceStage moves a stage to IN_PROGRESS. The stage's own current status is
// not checked.
func (u *ProductionUseCase) AdvanceStage(ctx context.Context, actor entities.Employee, code string, idx int) (entities.Stage, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectStage, policy.ActionAdvance, entities.AuditStageAdvance, indexTarget(code, "stage", idx)); err != nil {
		return entities.Stage{}, err
	}
	return u.mutateStage(ctx, actor, code, idx, entities.AuditStageAdvance, func(a *entities.Aircraft, s *entities.Stage) error {
		if idx > 0 && a.Stages[idx-1].Status != entities.StageStatusCompleted {
			return ErrPreviousStageNotCompleted
		}
		s.Status = entities.StageStatusInProgress
		return nil
	})
}

// CompleteStage marks a stage COMPLETED. Completing the last stage is refused
// while any test type's latest result is FAILED.
func (u *ProductionUseCase) CompleteStage(ctx context.Context, actor entities.Employee, code string, idx int) (entities.Stage, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectStage, policy.ActionComplete, entities.AuditStageComplete, indexTarget(code, "stage", idx)); err != nil {
		return entities.Stage{}, err
	}
	return u.mutateStage(ctx, actor, code, idx, entities.AuditStageComplete, func(a *entities.Aircraft, s *entities.Stage) error {
		if idx == len(a.Stages)-1 && a.HasPendingFailedTests() {
			return ErrFailedTestsPending
		}
		s.Status = entities.StageStatusCompleted
		return nil
	})
}

// AssignEmployeeToStage adds employeeID to the stage; assigning twice is a no-op.
func (u *ProductionUseCase) AssignEmployeeToStage(ctx context.Context, actor entities.Employee, code string, idx int, employeeID string) (entities.Stage, error) {
	code = strings.TrimSpace(code)
	employeeID = strings.TrimSpace(employeeID)
	if err := u.authorize(ctx, actor, policy.ObjectStage, policy.ActionAssign, entities.AuditStageAssign, indexTarget(code, "stage", idx)); err != nil {
		return entities.Stage{}, err
	}
	return u.mutateStage(ctx, actor, code, idx, entities.AuditStageAssign, func(_ *entities.Aircraft, s *entities.Stage) error {
		if employeeID == "" {
			return ErrUserNotFound
		}
		e, err := u.employees.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if e.ID == "" {
			return ErrUserNotFound
		}
		for _, id := range s.EmployeeIDs {
			if id == employeeID {
				return nil
			}
		}
		s.EmployeeIDs = append(s.EmployeeIDs, employeeID)
		return nil
	})
}

func (u *ProductionUseCase) mutateStage(ctx context.Context, actor entities.Employee, code string, idx int, action entities.AuditAction, fn func(a *entities.Aircraft, s *entities.Stage) error) (entities.Stage, error) {
	var out entities.Stage
	_, err := u.mutate(ctx, actor, code, action, func(a *entities.Aircraft) (string, error) {
		s, ok := a.StageAt(idx)
		if !ok {
			return "", ErrStageNotFound
		}
		if err := fn(a, &s); err != nil {
			return "", err
		}
		a.ReplaceStage(s)
		out = s
		return nestedTarget(code, "stage", s.ID), nil
	})
	if err != nil {
		return entities.Stage{}, err
	}
	return out, nil
}

// ----- tests -----

func (u *ProductionUseCase) RegisterTest(ctx context.Context, actor entities.Employee, code string, t entities.Test) (entities.Test, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectTest, policy.ActionCreate, entities.AuditTestCreate, code); err != nil {
		return entities.Test{}, err
	}
	if err := validateTest(t); err != nil {
		return entities.Test{}, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = u.now()

	_, err := u.mutate(ctx, actor, code, entities.AuditTestCreate, func(a *entities.Aircraft) (string, error) {
		a.Tests = append(a.Tests, t)
		return nestedTarget(code, "test", t.ID), nil
	})
	if err != nil {
		return entities.Test{}, err
	}
	return t, nil
}

func (u *ProductionUseCase) ListTests(ctx context.Context, code string) ([]entities.Test, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return nil, err
	}
	return a.Tests, nil
}

func (u *ProductionUseCase) GetTest(ctx context.Context, code string, idx int) (entities.Test, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return entities.Test{}, err
	}
	t, ok := a.TestAt(idx)
	if !ok {
		return entities.Test{}, ErrTestNotFound
	}
	return t, nil
}

func (u *ProductionUseCase) UpdateTest(ctx context.Context, actor entities.Employee, code string, idx int, changes TestChanges) (entities.Test, error) {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectTest, policy.ActionUpdate, entities.AuditTestUpdate, indexTarget(code, "test", idx)); err != nil {
		return entities.Test{}, err
	}
	var out entities.Test
	_, err := u.mutate(ctx, actor, code, entities.AuditTestUpdate, func(a *entities.Aircraft) (string, error) {
		t, ok := a.TestAt(idx)
		if !ok {
			return "", ErrTestNotFound
		}
		if changes.Type != nil {
			t.Type = *changes.Type
		}
		if changes.Result != nil {
			t.Result = *changes.Result
		}
		if err := validateTest(t); err != nil {
			return "", err
		}
		a.ReplaceTest(t)
		out = t
		return nestedTarget(code, "test", t.ID), nil
	})
	if err != nil {
		return entities.Test{}, err
	}
	return out, nil
}

func (u *ProductionUseCase) DeleteTest(ctx context.Context, actor entities.Employee, code string, idx int) error {
	code = strings.TrimSpace(code)
	if err := u.authorize(ctx, actor, policy.ObjectTest, policy.ActionDelete, entities.AuditTestDelete, indexTarget(code, "test", idx)); err != nil {
		return err
	}
	_, err := u.mutate(ctx, actor, code, entities.AuditTestDelete, func(a *entities.Aircraft) (string, error) {
		t, ok := a.TestAt(idx)
		if !ok {
			return "", ErrTestNotFound
		}
		a.RemoveTest(t.ID)
		return nestedTarget(code, "test", t.ID), nil
	})
	return err
}

// ----- report -----

// GenerateReport hands a hydrated snapshot of the aircraft to the renderer and
// returns the renderer's locator. Nothing is audited.
func (u *ProductionUseCase) GenerateReport(ctx context.Context, code string) (string, error) {
	a, err := u.GetAircraft(ctx, code)
	if err != nil {
		return "", err
	}
	report := entities.AircraftReport{
		Aircraft:    a,
		Stages:      make([]entities.StageReport, 0, len(a.Stages)),
		GeneratedAt: u.now(),
	}
	cache := map[string]entities.Employee{}
	for _, s := range a.Stages {
		sr := entities.StageReport{Stage: s, Assignees: []entities.StageAssignee{}}
		for _, id := range s.EmployeeIDs {
			e, ok := cache[id]
			if !ok {
				if e, err = u.employees.GetByID(ctx, id); err != nil {
					return "", err
				}
				cache[id] = e
			}
			// Accounts deleted after assignment are left out of the report.
			if e.ID == "" {
				continue
			}
			sr.Assignees = append(sr.Assignees, entities.StageAssignee{ID: e.ID, Name: e.Name, PermissionLevel: e.PermissionLevel})
		}
		report.Stages = append(report.Stages, sr)
	}

	if u.renderer == nil {
		return "", fmt.Errorf("%w: no renderer configured", ErrRenderFailure)
	}
	locator, err := u.renderer.Render(ctx, report)
	if err != nil {
		u.logger.Error("report rendering failed", zap.String("codigo", a.Code), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}
	u.logger.Info("report generated", zap.String("codigo", a.Code), zap.String("locator", locator))
	return locator, nil
}

// ----- helpers -----

// authorize checks the policy and, on refusal, appends the _DENIED record
// before returning ErrPermissionDenied.
func (u *ProductionUseCase) authorize(ctx context.Context, actor entities.Employee, obj policy.Object, act policy.Action, action entities.AuditAction, target string) error {
	if strings.TrimSpace(actor.ID) == "" {
		return ErrActorNotFound
	}
	ok, err := u.policy.Allow(actor, obj, act, "")
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if err := u.record(ctx, actor, action.Denied(), target); err != nil {
		return err
	}
	return ErrPermissionDenied
}

// mutate loads the aircraft under its lock, applies fn, saves the result and
// appends the audit record for the target fn returns.
func (u *ProductionUseCase) mutate(ctx context.Context, actor entities.Employee, code string, action entities.AuditAction, fn func(a *entities.Aircraft) (target string, err error)) (entities.Aircraft, error) {
	if code == "" {
		return entities.Aircraft{}, ErrAircraftNotFound
	}
	unlock := u.locks.Lock(code)
	defer unlock()

	a, err := u.aircraft.GetByCode(ctx, code)
	if err != nil {
		return entities.Aircraft{}, err
	}
	if a.Code == "" {
		return entities.Aircraft{}, ErrAircraftNotFound
	}

	target, err := fn(&a)
	if err != nil {
		return entities.Aircraft{}, err
	}
	a.UpdatedAt = u.now()

	saved, err := u.aircraft.Save(ctx, a)
	if err != nil {
		return entities.Aircraft{}, err
	}
	if saved.Code == "" {
		return entities.Aircraft{}, ErrAircraftNotFound
	}
	if err := u.record(ctx, actor, action, target); err != nil {
		return entities.Aircraft{}, err
	}
	return saved, nil
}

func (u *ProductionUseCase) record(ctx context.Context, actor entities.Employee, action entities.AuditAction, target string) error {
	_, err := u.audit.Record(ctx, action, actor.ID, target, actor.Username, actor.PermissionLevel)
	return err
}

func nestedTarget(code, kind, id string) string {
	return code + "/" + kind + "/" + id
}

func indexTarget(code, kind string, idx int) string {
	return fmt.Sprintf("%s/%s/#%d", code, kind, idx)
}

func validateAircraft(a entities.Aircraft) error {
	switch {
	case a.Code == "":
		return fmt.Errorf("%w: codigo is required", ErrInvalidAircraft)
	case a.Model == "":
		return fmt.Errorf("%w: modelo is required", ErrInvalidAircraft)
	case !a.Type.Valid():
		return fmt.Errorf("%w: tipo must be COMMERCIAL or MILITARY", ErrInvalidAircraft)
	case a.Capacity < 0:
		return fmt.Errorf("%w: capacidade must not be negative", ErrInvalidAircraft)
	case a.RangeKm < 0:
		return fmt.Errorf("%w: alcanceKm must not be negative", ErrInvalidAircraft)
	}
	return nil
}

func validatePart(p entities.Part) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: nome is required", ErrInvalidPart)
	case !p.Type.Valid():
		return fmt.Errorf("%w: tipo must be DOMESTIC or IMPORTED", ErrInvalidPart)
	case p.Supplier == "":
		return fmt.Errorf("%w: fornecedor is required", ErrInvalidPart)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidPart, p.Status)
	}
	return nil
}

func validateTest(t entities.Test) error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: tipo must be ELECTRICAL, HYDRAULIC or AERODYNAMIC", ErrInvalidTest)
	}
	if !t.Result.Valid() {
		return fmt.Errorf("%w: resultado must be PASSED or FAILED", ErrInvalidTest)
	}
	return nil
}
