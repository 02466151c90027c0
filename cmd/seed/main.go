// seed creates the reserved system account, the default admin and,
// with --demo, one engineer and one operator in the configured store.
// Re-running it is safe: existing accounts are left untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"aerocode/internal/adapter/persistence"
	"aerocode/internal/config"
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	"aerocode/internal/infrastructure/logger"
	"aerocode/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// demoAccounts mirrors the accounts the desktop client ships with.
var demoAccounts = []entities.Employee{
	{
		ID:              "eng1",
		Name:            "Engenheiro Demo",
		Username:        "eng1",
		Password:        "eng123",
		PermissionLevel: entities.PermissionEngineer,
	},
	{
		ID:              "op1",
		Name:            "Operador Demo",
		Username:        "op1",
		Password:        "op123",
		PermissionLevel: entities.PermissionOperator,
	},
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var storage, adminPassword string
	var demo bool

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVar(&storage, "storage", "", "storage driver override (dynamodb or memory)")
	flagSet.StringVar(&adminPassword, "admin-password", "", "password for the default admin (default: ADMIN_PASSWORD or admin123)")
	flagSet.BoolVar(&demo, "demo", false, "also create the eng1 and op1 demo accounts")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if storage != "" {
		cfg.Storage.Driver = storage
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if adminPassword == "" {
		adminPassword = cfg.Bootstrap.AdminPassword
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()
	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return err
	}
	enforcer, err := policy.New()
	if err != nil {
		return err
	}

	audit := usecase.NewAuditUseCase(repos.Audit, enforcer, zapLogger)
	identity := usecase.NewIdentityUseCase(repos.Employees, audit, enforcer, zapLogger)

	created, err := seed(ctx, identity, adminPassword, demo)
	if err != nil {
		return err
	}
	zapLogger.Info("seed finished",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("demo_accounts_created", created),
	)
	return nil
}

type seeder interface {
	Bootstrap(ctx context.Context, adminPassword string) error
	Register(ctx context.Context, e entities.Employee) (entities.Employee, error)
}

// seed returns how many demo accounts were created.
func seed(ctx context.Context, identity seeder, adminPassword string, demo bool) (int, error) {
	if err := identity.Bootstrap(ctx, adminPassword); err != nil {
		return 0, err
	}
	if !demo {
		return 0, nil
	}
	created := 0
	for _, e := range demoAccounts {
		if _, err := identity.Register(ctx, e); err != nil {
			if errors.Is(err, usecase.ErrDuplicateUser) {
				continue
			}
			return created, fmt.Errorf("register %s: %w", e.Username, err)
		}
		created++
	}
	return created, nil
}
