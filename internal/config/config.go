package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes all runtime settings for the game host.
//
// Load it once in main, validate, and pass it down explicitly.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"dev"` // dev|stage|prod

	Log struct {
		Format string `env:"LOG_FORMAT" envDefault:"text"` // text|json
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		File   string `env:"LOG_FILE"` // empty => stderr
	}

	Game struct {
		// 0 => secrets drawn from a random source
		Seed         uint64 `env:"GAME_SEED" envDefault:"0"`
		Lang         string `env:"GAME_LANG" envDefault:"en"`
		RevealSecret bool   `env:"GAME_REVEAL_SECRET" envDefault:"false"`
		UI           string `env:"GAME_UI" envDefault:"auto"` // auto|screen|line
	}
}

const (
	UIAuto   = "auto"
	UIScreen = "screen"
	UILine   = "line"
)

// Languages with a message catalog.
var SupportedLangs = []string{"en", "ru"}

// LoadFromEnv reads optional .env files and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadFromEnv(files ...string) (Config, error) {
	if err := loadDotenv(files...); err != nil {
		return Config{}, err
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Game.Lang = strings.ToLower(c.Game.Lang)
	c.Game.UI = strings.ToLower(c.Game.UI)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		// a missing default .env is fine
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Env {
	case "dev", "stage", "prod":
	default:
		return fmt.Errorf("unsupported APP_ENV=%q (want dev|stage|prod)", c.Env)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Game.Lang == "" {
		return errors.New("GAME_LANG is empty")
	}
	if !slices.Contains(SupportedLangs, langBase(c.Game.Lang)) {
		return fmt.Errorf("unsupported GAME_LANG=%q (want one of %s)", c.Game.Lang, strings.Join(SupportedLangs, "|"))
	}
	switch c.Game.UI {
	case UIAuto, UIScreen, UILine:
	default:
		return fmt.Errorf("unsupported GAME_UI=%q (want auto|screen|line)", c.Game.UI)
	}
	if c.Env != "dev" && c.Game.RevealSecret {
		return fmt.Errorf("refuse to log secrets in %s", c.Env)
	}
	return nil
}

// langBase strips a region: "ru-RU" and "ru_RU" become "ru".
func langBase(lang string) string {
	base, _, _ := strings.Cut(strings.ReplaceAll(lang, "_", "-"), "-")
	return strings.ToLower(base)
}

// LogLevel parses LOG_LEVEL (debug|info|warn|error).
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
