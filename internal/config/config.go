package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported backends.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	AuthProviderMongo = "mongo"
	AuthProviderMock  = "mock"

	CatalogBuiltin = "builtin"
	CatalogJSON    = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	S3       S3Config       `mapstructure:"s3"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // mongo or memory
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
}

// AuthConfig selects the account store and the sign-in throttle.
type AuthConfig struct {
	Provider          string        `mapstructure:"provider"` // mongo or mock
	MaxFailedAttempts int           `mapstructure:"max_failed_attempts"`
	LockoutWindow     time.Duration `mapstructure:"lockout_window"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type S3Config struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UsePathStyle    bool          `mapstructure:"use_path_style"` // required by MinIO and most S3-compatible services
	SnapshotPrefix  string        `mapstructure:"snapshot_prefix"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// CatalogConfig picks the exercise library source. Path is a local file or s3://bucket/key.
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

type KafkaConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Brokers []string    `mapstructure:"brokers"`
	Topics  KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	CheckInRecorded string `mapstructure:"checkin_recorded"`
	GoalCompleted   string `mapstructure:"goal_completed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Nested keys map to env vars, e.g. jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_tracker")
	v.SetDefault("auth.provider", AuthProviderMock)
	v.SetDefault("auth.max_failed_attempts", 5)
	v.SetDefault("auth.lockout_window", "15m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_path_style", true)
	v.SetDefault("s3.snapshot_prefix", "checkins")
	v.SetDefault("s3.presign_expiry", "15m")
	v.SetDefault("catalog.source", CatalogBuiltin)
	v.SetDefault("catalog.path", "")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topics.checkin_recorded", "readiness.checkin.recorded")
	v.SetDefault("kafka.topics.goal_completed", "goal.completed")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)

	// A missing config file is fine, defaults and env vars still apply.
	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, err
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" || c.Database.Name == "" {
			problems = append(problems, "database.uri and database.name are required for the mongo driver")
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown database.driver %q", c.Database.Driver))
	}

	switch c.Auth.Provider {
	case AuthProviderMongo:
		if c.Database.Driver != DriverMongo {
			problems = append(problems, "auth.provider mongo requires database.driver mongo")
		}
	case AuthProviderMock:
	default:
		problems = append(problems, fmt.Sprintf("unknown auth.provider %q", c.Auth.Provider))
	}
	if c.Auth.MaxFailedAttempts <= 0 || c.Auth.LockoutWindow <= 0 {
		problems = append(problems, "auth.max_failed_attempts and auth.lockout_window must be positive")
	}

	if c.JWT.Secret == "" {
		problems = append(problems, "jwt.secret is required")
	}
	if c.JWT.Expiration <= 0 {
		problems = append(problems, "jwt.expiration must be positive")
	}

	if c.S3.Enabled && (c.S3.BucketName == "" || c.S3.Region == "") {
		problems = append(problems, "s3.bucket_name and s3.region are required when s3 is enabled")
	}

	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogJSON:
		if c.Catalog.Path == "" {
			problems = append(problems, "catalog.path is required for the json catalog source")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown catalog.source %q", c.Catalog.Source))
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		problems = append(problems, "kafka.brokers is required when kafka is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
