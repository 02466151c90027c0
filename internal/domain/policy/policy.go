// Package policy decides whether an actor may perform an action on a kind of
// record. Decisions are pure: the same role, object, action and self flag
// always produce the same answer and nothing is written.
package policy

import (
	_ "embed"
	"errors"
	"strconv"
	"strings"

	"aerocode/internal/domain/entities"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

type Object string

const (
	ObjectAircraft Object = "aircraft"
	ObjectPart     Object = "part"
	ObjectStage    Object = "stage"
	ObjectTest     Object = "test"
	ObjectEmployee Object = "employee"
	ObjectAudit    Object = "audit"
)

type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionStatus   Action = "status"
	ActionAdvance  Action = "advance"
	ActionComplete Action = "complete"
	ActionAssign   Action = "assign"
	ActionList     Action = "list"
)

var (
	//go:embed model.conf
	defaultModel string
	//go:embed policy.csv
	defaultPolicy string
)

var ErrEmptyPolicy = errors.New("policy: empty model or policy")

type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// New builds an enforcer from the rules compiled into the binary.
func New() (*Enforcer, error) {
	return NewFromStrings(defaultModel, defaultPolicy)
}

func NewFromStrings(modelText, policyText string) (*Enforcer, error) {
	if strings.TrimSpace(modelText) == "" || strings.TrimSpace(policyText) == "" {
		return nil, ErrEmptyPolicy
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, err
	}
	return &Enforcer{enforcer: e}, nil
}

// NewFromFiles loads an operator-supplied model and CSV policy, for deployments
// that need to tune the rules without rebuilding.
func NewFromFiles(modelPath, policyPath string) (*Enforcer, error) {
	e, err := casbin.NewSyncedEnforcer(modelPath)
	if err != nil {
		return nil, err
	}
	e.SetAdapter(fileadapter.NewAdapter(policyPath))
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &Enforcer{enforcer: e}, nil
}

// Allow reports whether actor may perform act on obj. targetID is the id of
// the employee being acted on for self-service rules and empty otherwise.
func (e *Enforcer) Allow(actor entities.Employee, obj Object, act Action, targetID string) (bool, error) {
	subject := strings.TrimSpace(string(actor.PermissionLevel))
	if subject == "" {
		return false, nil
	}
	self := targetID != "" && actor.ID != "" && actor.ID == targetID
	return e.enforcer.Enforce(subject, string(obj), string(act), strconv.FormatBool(self))
}
