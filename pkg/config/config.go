package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/limbo/codetrack/internal/reconcile"
	"github.com/limbo/codetrack/internal/repository"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the env file once. A missing file is fine: values may come from
// the process environment alone. CODETRACK_ENV_FILE overrides the path.
func New() *Config {
	once.Do(func() {
		path := getEnv("CODETRACK_ENV_FILE", defaultEnvFile)
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	return getEnv(key, fallback)
}

func (c *Config) GetInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + err.Error())
	}
	return n, nil
}

func (c *Config) GetFloat(key string, fallback float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + err.Error())
	}
	return f, nil
}

func (c *Config) GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New("invalid " + key + ": " + err.Error())
	}
	return d, nil
}

// Location returns APP_TIMEZONE, time.Local when unset or "Local".
func (c *Config) Location() (*time.Location, error) {
	name := getEnv("APP_TIMEZONE", "Local")
	if name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("invalid APP_TIMEZONE: " + err.Error())
	}
	return loc, nil
}

func (c *Config) Postgres() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  c.GetString("POSTGRES_DB_ADDRESS"),
		Username: c.GetString("POSTGRES_USER"),
		Password: c.GetString("POSTGRES_PASSWORD"),
		DB:       c.GetString("POSTGRES_DB"),
	}
}

// Github returns commit feed settings. Missing credentials are not an error:
// the feed then reports itself as not configured.
func (c *Config) Github() (reconcile.Config, error) {
	pageSize, err := c.GetInt("GITHUB_PAGE_SIZE", reconcile.DefaultPageSize)
	if err != nil {
		return reconcile.Config{}, err
	}
	return reconcile.Config{
		Token:    c.GetString("GITHUB_TOKEN"),
		Owner:    c.GetString("GITHUB_USERNAME"),
		Repo:     c.GetString("GITHUB_REPO"),
		PageSize: pageSize,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
