package usecase

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	"aerocode/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultAdminPassword = "admin123"

// IIdentityUseCase manages employee accounts and guards the last-admin floor.
//
// Reads return accounts without their password. The reserved system account
// is the audit actor for registrations nobody is logged in for; it never
// authenticates and cannot be changed.
type IIdentityUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.Employee, bool, error)
	Register(ctx context.Context, e entities.Employee) (entities.Employee, error)
	RegisterByActor(ctx context.Context, e entities.Employee, actorID string) (entities.Employee, error)
	UpdateUser(ctx context.Context, updated entities.Employee, actorID string) (entities.Employee, error)
	DeleteUser(ctx context.Context, id, actorID string) error
	ListUsers(ctx context.Context) ([]entities.Employee, error)
	ListUsersByActor(ctx context.Context, actor entities.Employee) ([]entities.Employee, error)
	GetUserByID(ctx context.Context, id string) (entities.Employee, error)
	Bootstrap(ctx context.Context, adminPassword string) error
}

type IdentityUseCase struct {
	repo   interfaces.IEmployeeRepository
	audit  IAuditUseCase
	policy interfaces.IAccessPolicy
	logger *zap.Logger

	// mu serialises every account mutation: uniqueness of usuario and the
	// admin floor are checked across accounts.
	mu sync.Mutex
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(repo interfaces.IEmployeeRepository, audit IAuditUseCase, accessPolicy interfaces.IAccessPolicy, logger *zap.Logger) *IdentityUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityUseCase{repo: repo, audit: audit, policy: accessPolicy, logger: logger}
}

func (u *IdentityUseCase) Authenticate(ctx context.Context, username, password string) (entities.Employee, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Employee{}, false, nil
	}
	e, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Employee{}, false, err
	}
	if e.ID == "" || e.IsSystem() || e.Password != password {
		return entities.Employee{}, false, nil
	}
	return e.Public(), true, nil
}

// Register creates an account with the system account as the audit actor.
func (u *IdentityUseCase) Register(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.register(ctx, e, entities.SystemEmployeeID)
}

func (u *IdentityUseCase) RegisterByActor(ctx context.Context, e entities.Employee, actorID string) (entities.Employee, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	actor, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := u.authorize(ctx, actor, policy.ActionCreate, entities.AuditRegister, e); err != nil {
		return entities.Employee{}, err
	}
	return u.register(ctx, e, actor.ID)
}

func (u *IdentityUseCase) register(ctx context.Context, e entities.Employee, actorID string) (entities.Employee, error) {
	e = normalizeEmployee(e)
	if err := validateEmployee(e); err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if existing, err := u.repo.GetByID(ctx, e.ID); err != nil {
		return entities.Employee{}, err
	} else if existing.ID != "" {
		return entities.Employee{}, ErrDuplicateUser
	}
	if existing, err := u.repo.GetByUsername(ctx, e.Username); err != nil {
		return entities.Employee{}, err
	} else if existing.ID != "" {
		return entities.Employee{}, ErrDuplicateUser
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, interfaces.ErrUsernameTaken) {
			return entities.Employee{}, ErrDuplicateUser
		}
		return entities.Employee{}, err
	}
	if _, err := u.audit.Record(ctx, entities.AuditRegister, actorID, created.ID, created.Username, created.PermissionLevel); err != nil {
		return entities.Employee{}, err
	}
	u.logger.Info("employee registered",
		zap.String("employee_id", created.ID),
		zap.String("actor_id", actorID),
		zap.String("level", string(created.PermissionLevel)),
	)
	return created.Public(), nil
}

// UpdateUser replaces the account's fields. An empty senha keeps the stored
// password and an empty nivelPermissao keeps the current level.
func (u *IdentityUseCase) UpdateUser(ctx context.Context, updated entities.Employee, actorID string) (entities.Employee, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	actor, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return entities.Employee{}, err
	}
	target, err := u.resolveTarget(ctx, updated.ID)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := u.authorize(ctx, actor, policy.ActionUpdate, entities.AuditUpdate, target); err != nil {
		return entities.Employee{}, err
	}

	updated = normalizeEmployee(updated)
	if updated.PermissionLevel == "" {
		updated.PermissionLevel = target.PermissionLevel
	}
	// Self-service may edit profile fields but never the caller's own level.
	if !actor.IsAdmin() && updated.PermissionLevel != target.PermissionLevel {
		return entities.Employee{}, u.deny(ctx, actor, entities.AuditUpdate, target)
	}
	if target.IsSystem() {
		return entities.Employee{}, ErrReservedAccount
	}
	if updated.Password == "" {
		updated.Password = target.Password
	}
	if err := validateEmployee(updated); err != nil {
		return entities.Employee{}, err
	}

	if updated.Username != target.Username {
		existing, err := u.repo.GetByUsername(ctx, updated.Username)
		if err != nil {
			return entities.Employee{}, err
		}
		if existing.ID != "" && existing.ID != target.ID {
			return entities.Employee{}, ErrDuplicateUser
		}
	}
	if target.IsAdmin() && !updated.IsAdmin() {
		if err := u.ensureAnotherAdmin(ctx, target.ID); err != nil {
			return entities.Employee{}, err
		}
	}

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, interfaces.ErrUsernameTaken) {
			return entities.Employee{}, ErrDuplicateUser
		}
		return entities.Employee{}, err
	}
	if saved.ID == "" {
		return entities.Employee{}, ErrUserNotFound
	}
	if _, err := u.audit.Record(ctx, entities.AuditUpdate, actor.ID, saved.ID, saved.Username, saved.PermissionLevel); err != nil {
		return entities.Employee{}, err
	}
	return saved.Public(), nil
}

func (u *IdentityUseCase) DeleteUser(ctx context.Context, id, actorID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	actor, err := u.resolveActor(ctx, actorID)
	if err != nil {
		return err
	}
	target, err := u.resolveTarget(ctx, id)
	if err != nil {
		return err
	}
	if err := u.authorize(ctx, actor, policy.ActionDelete, entities.AuditDelete, target); err != nil {
		return err
	}
	if target.IsSystem() {
		return ErrReservedAccount
	}
	if target.IsAdmin() {
		if err := u.ensureAnotherAdmin(ctx, target.ID); err != nil {
			return err
		}
	}

	if err := u.repo.Delete(ctx, target.ID); err != nil {
		return err
	}
	if _, err := u.audit.Record(ctx, entities.AuditDelete, actor.ID, target.ID, target.Username, target.PermissionLevel); err != nil {
		return err
	}
	u.logger.Info("employee deleted", zap.String("employee_id", target.ID), zap.String("actor_id", actor.ID))
	return nil
}

func (u *IdentityUseCase) ListUsers(ctx context.Context) ([]entities.Employee, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Employee, 0, len(all))
	for _, e := range all {
		out = append(out, e.Public())
	}
	return out, nil
}

// ListUsersByActor is the ADMIN-only listing used by the HTTP surface. A
// refusal is not audited since nothing was attempted against a record.
func (u *IdentityUseCase) ListUsersByActor(ctx context.Context, actor entities.Employee) ([]entities.Employee, error) {
	ok, err := u.policy.Allow(actor, policy.ObjectEmployee, policy.ActionList, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	return u.ListUsers(ctx)
}

func (u *IdentityUseCase) GetUserByID(ctx context.Context, id string) (entities.Employee, error) {
	e, err := u.resolveTarget(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	return e.Public(), nil
}

// Bootstrap makes sure the reserved system account and the default admin
// exist. Running it again is a no-op.
func (u *IdentityUseCase) Bootstrap(ctx context.Context, adminPassword string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	sys, err := u.repo.GetByID(ctx, entities.SystemEmployeeID)
	if err != nil {
		return fmt.Errorf("bootstrap system account: %w", err)
	}
	if sys.ID == "" {
		_, err := u.repo.Create(ctx, entities.Employee{
			ID:              entities.SystemEmployeeID,
			Name:            "System",
			Username:        entities.SystemUsername,
			Password:        entities.SystemPassword,
			PermissionLevel: entities.PermissionAdmin,
		})
		if err != nil {
			return fmt.Errorf("bootstrap system account: %w", err)
		}
		u.logger.Info("system account created")
	}

	admin, err := u.repo.GetByUsername(ctx, entities.DefaultAdminUsername)
	if err != nil {
		return fmt.Errorf("bootstrap admin account: %w", err)
	}
	if admin.ID != "" {
		return nil
	}
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	_, err = u.register(ctx, entities.Employee{
		ID:              entities.DefaultAdminID,
		Name:            "Administrador",
		Username:        entities.DefaultAdminUsername,
		Password:        adminPassword,
		PermissionLevel: entities.PermissionAdmin,
	}, entities.SystemEmployeeID)
	if err != nil {
		return fmt.Errorf("bootstrap admin account: %w", err)
	}
	return nil
}

func (u *IdentityUseCase) resolveTarget(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrUserNotFound
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrUserNotFound
	}
	return e, nil
}

func (u *IdentityUseCase) resolveActor(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrActorNotFound
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrActorNotFound
	}
	return e, nil
}

func (u *IdentityUseCase) authorize(ctx context.Context, actor entities.Employee, act policy.Action, action entities.AuditAction, target entities.Employee) error {
	ok, err := u.policy.Allow(actor, policy.ObjectEmployee, act, target.ID)
	if err != nil {
		return err
	}
	if !ok {
		return u.deny(ctx, actor, action, target)
	}
	return nil
}

func (u *IdentityUseCase) deny(ctx context.Context, actor entities.Employee, action entities.AuditAction, target entities.Employee) error {
	if _, err := u.audit.Record(ctx, action.Denied(), actor.ID, target.ID, target.Username, target.PermissionLevel); err != nil {
		return err
	}
	return ErrPermissionDenied
}

// ensureAnotherAdmin fails when removing id's admin level would leave no
// administrator besides the system account.
func (u *IdentityUseCase) ensureAnotherAdmin(ctx context.Context, id string) error {
	n, err := u.repo.CountByLevel(ctx, entities.PermissionAdmin, entities.SystemEmployeeID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLastAdminProtected
	}
	return nil
}

func normalizeEmployee(e entities.Employee) entities.Employee {
	e.ID = strings.TrimSpace(e.ID)
	e.Name = strings.TrimSpace(e.Name)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Address = strings.TrimSpace(e.Address)
	e.Username = strings.TrimSpace(e.Username)
	e.PermissionLevel = entities.PermissionLevel(strings.ToUpper(strings.TrimSpace(string(e.PermissionLevel))))
	return e
}

func validateEmployee(e entities.Employee) error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: nome is required", ErrInvalidEmployee)
	case e.Username == "":
		return fmt.Errorf("%w: usuario is required", ErrInvalidEmployee)
	case e.Password == "":
		return fmt.Errorf("%w: senha is required", ErrInvalidEmployee)
	case !e.PermissionLevel.Valid():
		return fmt.Errorf("%w: nivelPermissao must be ADMIN, ENGINEER or OPERATOR", ErrInvalidEmployee)
	}
	return nil
}
