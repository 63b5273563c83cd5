package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env          string `yaml:"env" env:"PORTAL_ENV" env-default:"prod"`
	ErrorLogPath string `yaml:"error_log_path" env:"PORTAL_ERROR_LOG" env-default:"errors.log"`
	HTTPServer   `yaml:"http_server"`
	DBUser       string `yaml:"db_user" env:"PORTAL_DB_USER" env-required:"true"`
	DBPassword   string `yaml:"db_password" env:"PORTAL_DB_PASSWORD"`
	DBHost       string `yaml:"db_host" env:"PORTAL_DB_HOST" env-default:"localhost"`
	DBPort       int    `yaml:"db_port" env:"PORTAL_DB_PORT" env-default:"3306"`
	DBName       string `yaml:"db_name" env:"PORTAL_DB_NAME" env-required:"true"`
	ParseTime    bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login" env:"PORTAL_ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"PORTAL_ADMIN_PASS"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"PORTAL_ADDRESS" env-default:"localhost:4001"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"PORTAL_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
