// Package config loads runtime settings from the environment (and an optional
// .env file loaded by godotenv before Load runs).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	ReportsFilesystem = "fs"
	ReportsS3         = "s3"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	DynamoDB  DynamoDBConfig  `mapstructure:"dynamodb"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Reports   ReportsConfig   `mapstructure:"reports"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Policy    PolicyConfig    `mapstructure:"policy"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	AircraftTable  string `mapstructure:"aircraft_table"`
	EmployeesTable string `mapstructure:"employees_table"`
	AuditTable     string `mapstructure:"audit_table"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type ReportsConfig struct {
	Driver     string `mapstructure:"driver"`
	Dir        string `mapstructure:"dir"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Prefix   string `mapstructure:"s3_prefix"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
}

type JWTConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	Issuer   string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BootstrapConfig struct {
	AdminPassword string `mapstructure:"admin_password"`
}

// PolicyConfig points at an operator-supplied casbin model and policy. When
// either is empty the rules compiled into the binary are used.
type PolicyConfig struct {
	ModelPath  string `mapstructure:"model_path"`
	PolicyPath string `mapstructure:"policy_path"`
}

func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	if err := bindEnvVariables(v); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.driver", StorageDynamoDB)

	v.SetDefault("dynamodb.aircraft_table", "aircraft")
	v.SetDefault("dynamodb.employees_table", "employees")
	v.SetDefault("dynamodb.audit_table", "audit_records")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("reports.driver", ReportsFilesystem)
	v.SetDefault("reports.dir", "relatorios")
	v.SetDefault("reports.s3_prefix", "relatorios/")

	v.SetDefault("jwt.secret", "aerocode-dev-secret")
	v.SetDefault("jwt.token_ttl", 8*time.Hour)
	v.SetDefault("jwt.issuer", "aerocode")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func bindEnvVariables(v *viper.Viper) error {
	bindings := map[string]string{
		"server.port":             "PORT",
		"server.mode":             "GIN_MODE",
		"server.read_timeout":     "SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",

		"storage.driver": "STORAGE_DRIVER",

		"dynamodb.endpoint":        "DYNAMODB_ENDPOINT",
		"dynamodb.aircraft_table":  "AIRCRAFT_TABLE",
		"dynamodb.employees_table": "EMPLOYEES_TABLE",
		"dynamodb.audit_table":     "AUDIT_TABLE",

		"aws.region":            "AWS_REGION",
		"aws.access_key_id":     "AWS_ACCESS_KEY_ID",
		"aws.secret_access_key": "AWS_SECRET_ACCESS_KEY",

		"reports.driver":      "REPORTS_DRIVER",
		"reports.dir":         "REPORTS_DIR",
		"reports.s3_bucket":   "REPORTS_S3_BUCKET",
		"reports.s3_prefix":   "REPORTS_S3_PREFIX",
		"reports.s3_endpoint": "REPORTS_S3_ENDPOINT",

		"jwt.secret":    "JWT_SECRET",
		"jwt.token_ttl": "JWT_TOKEN_TTL",
		"jwt.issuer":    "JWT_ISSUER",

		"log.level":  "LOG_LEVEL",
		"log.format": "LOG_FORMAT",

		"bootstrap.admin_password": "ADMIN_PASSWORD",

		"policy.model_path":  "POLICY_MODEL_PATH",
		"policy.policy_path": "POLICY_PATH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %s or %s)", c.Storage.Driver, StorageDynamoDB, StorageMemory)
	}
	switch c.Reports.Driver {
	case ReportsFilesystem:
	case ReportsS3:
		if c.Reports.S3Bucket == "" {
			return fmt.Errorf("REPORTS_S3_BUCKET is required when REPORTS_DRIVER=%s", ReportsS3)
		}
	default:
		return fmt.Errorf("unknown REPORTS_DRIVER %q (want %s or %s)", c.Reports.Driver, ReportsFilesystem, ReportsS3)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	return nil
}
