package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		HotelName string `yaml:"hotel_name"`
	} `yaml:"server"`
	Session struct {
		Secret     string        `yaml:"secret"`
		CookieName string        `yaml:"cookie_name"`
		TTL        time.Duration `yaml:"ttl"`
		Redis      struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"session"`
	Storage struct {
		Driver  string `yaml:"driver"` // json or postgres
		DataDir string `yaml:"data_dir"`
	} `yaml:"storage"`
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
	} `yaml:"database"`
	SMTP struct {
		Host              string `yaml:"host"`
		Port              int    `yaml:"port"`
		User              string `yaml:"user"`
		Password          string `yaml:"password"`
		From              string `yaml:"from"`
		HousekeepingEmail string `yaml:"housekeeping_email"`
	} `yaml:"smtp"`
}

const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 3000
	cfg.Server.HotelName = "Sifuna Hotel"
	cfg.Session.Secret = "345"
	cfg.Session.CookieName = "hotel_session"
	cfg.Session.TTL = 24 * time.Hour
	cfg.Storage.Driver = StorageJSON
	cfg.Storage.DataDir = "./data"
	cfg.Database.Port = 5432
	cfg.SMTP.Port = 587
	return cfg
}

// LoadConfig reads the YAML file at path over the defaults, then applies environment overrides.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.HotelName, "HOTEL_NAME")
	setString(&c.Session.Secret, "SECRET_KEY")
	setString(&c.Session.Redis.Addr, "REDIS_ADDR")
	setString(&c.Session.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.DataDir, "DATA_DIR")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.SMTP.Host, "SMTP_HOST")
	setString(&c.SMTP.User, "SMTP_USER")
	setString(&c.SMTP.Password, "SMTP_PASS")
	setString(&c.SMTP.From, "SMTP_FROM")
	setString(&c.SMTP.HousekeepingEmail, "HOUSEKEEPING_EMAIL")

	for key, dst := range map[string]*int{
		"PORT":      &c.Server.Port,
		"DB_PORT":   &c.Database.Port,
		"SMTP_PORT": &c.SMTP.Port,
	} {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.Session.TTL = d
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("session secret is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	switch c.Storage.Driver {
	case StorageJSON, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.DBName)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
