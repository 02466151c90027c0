package usecase

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	"aerocode/internal/usecase/interfaces"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IAuditUseCase is the append-only audit trail shared by the identity store
// and the production engine.
type IAuditUseCase interface {
	Record(ctx context.Context, action entities.AuditAction, actorID, targetID, username string, level entities.PermissionLevel) (entities.AuditRecord, error)
	List(ctx context.Context, actor entities.Employee, filter entities.AuditFilter) ([]entities.AuditRecord, error)
}

type AuditUseCase struct {
	repo   interfaces.IAuditRepository
	policy interfaces.IAccessPolicy
	logger *zap.Logger
	hooks  []func(entities.AuditRecord)
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditRepository, accessPolicy interfaces.IAccessPolicy, logger *zap.Logger) *AuditUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditUseCase{repo: repo, policy: accessPolicy, logger: logger}
}

// OnRecord registers fn to run after every successful append.
func (u *AuditUseCase) OnRecord(fn func(entities.AuditRecord)) *AuditUseCase {
	u.hooks = append(u.hooks, fn)
	return u
}

func (u *AuditUseCase) Record(ctx context.Context, action entities.AuditAction, actorID, targetID, username string, level entities.PermissionLevel) (entities.AuditRecord, error) {
	r := entities.AuditRecord{
		ID:        uuid.NewString(),
		Action:    action,
		ActorID:   actorID,
		TargetID:  targetID,
		Username:  username,
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.Append(ctx, r); err != nil {
		u.logger.Error("audit append failed",
			zap.String("action", string(action)),
			zap.String("actor_id", actorID),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		return entities.AuditRecord{}, fmt.Errorf("%w: %w", ErrAuditAppend, err)
	}
	for _, fn := range u.hooks {
		fn(r)
	}
	if action.IsDenial() {
		u.logger.Warn("permission denied",
			zap.String("action", string(action)),
			zap.String("actor_id", actorID),
			zap.String("target_id", targetID),
		)
	}
	return r, nil
}

func (u *AuditUseCase) List(ctx context.Context, actor entities.Employee, filter entities.AuditFilter) ([]entities.AuditRecord, error) {
	ok, err := u.policy.Allow(actor, policy.ObjectAudit, policy.ActionList, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	return u.repo.List(ctx, filter)
}
