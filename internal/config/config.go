package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Store     StoreConfig     `yaml:"store"     validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Tasks     TasksConfig     `yaml:"tasks"     validate:"required"`
	Mail      MailConfig      `yaml:"mail"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// StoreConfig selects the entity store engine. The memory engine keeps
// everything in process and is meant for development and tests.
type StoreConfig struct {
	Engine   string         `yaml:"engine" env:"STORE_ENGINE" env-default:"postgres" validate:"required,oneof=memory postgres"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost"   validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"        validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"    validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"    validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"confcentral" validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"          validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"           validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type TasksConfig struct {
	Workers int `yaml:"workers" env:"TASK_WORKERS" env-default:"4"   validate:"min=1"`
	Buffer  int `yaml:"buffer"  env:"TASK_BUFFER"  env-default:"128" validate:"min=1"`
}

// MailConfig configures the confirmation mailer. An empty host disables
// outgoing mail; confirmations are then only logged.
type MailConfig struct {
	SMTPHost string `yaml:"smtp_host" env:"MAIL_SMTP_HOST" env-default:""`
	SMTPPort int    `yaml:"smtp_port" env:"MAIL_SMTP_PORT" env-default:"587"`
	From     string `yaml:"from"      env:"MAIL_FROM"      env-default:"noreply@confcentral.example"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
