package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из TOML файла
// Секреты БД можно переопределить через переменные окружения (.env)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN собирает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подхватывает .env (если есть), затем применяет
// переопределения из окружения поверх значений файла
func Load(path string) (*Config, error) {
	// .env опционален - в проде переменные задаёт окружение деплоя
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
