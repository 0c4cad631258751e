// Package config reads server settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AuthMode string

const (
	AuthDatabase AuthMode = "db"
	AuthStatic   AuthMode = "static"
)

type Config struct {
	Addr          string
	TLSCert       string
	TLSKey        string
	TokenKey      string
	DatabaseURL   string
	SQLitePath    string
	AuthMode      AuthMode
	CurrencyRates string
	RecentsLimit  int
	StaticDir     string
	Gzip          bool
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads .env files (missing ones are ignored) and then the process
// environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Config{
		Addr:          getenv("ADDR"),
		TLSCert:       getenv("TLS_CERT"),
		TLSKey:        getenv("TLS_KEY"),
		TokenKey:      getenv("TOKEN_KEY"),
		DatabaseURL:   getenv("DATABASE_URL"),
		SQLitePath:    getenv("SQLITE_PATH"),
		AuthMode:      AuthMode(strings.ToLower(getenv("AUTH_MODE"))),
		CurrencyRates: getenv("CURRENCY_RATES"),
		StaticDir:     getenv("STATIC_DIR"),
		Gzip:          true,
	}
	if c.Addr == "" {
		c.Addr = ":8080"
		if c.TLS() {
			c.Addr = ":443"
		}
	}
	if c.StaticDir == "" {
		c.StaticDir = "./static"
	}
	if c.SQLitePath == "" && c.DatabaseURL == "" {
		c.SQLitePath = "buildcalc.db"
	}
	switch c.AuthMode {
	case "":
		c.AuthMode = AuthDatabase
	case AuthDatabase, AuthStatic:
	default:
		return Config{}, fmt.Errorf("AUTH_MODE %q: want db or static", c.AuthMode)
	}
	if c.TokenKey == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}
	if v := getenv("RECENTS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RECENTS_LIMIT %q: want a positive integer", v)
		}
		c.RecentsLimit = n
	}
	if v := getenv("GZIP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("GZIP %q: %w", v, err)
		}
		c.Gzip = b
	}
	return c, nil
}
