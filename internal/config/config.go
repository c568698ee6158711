package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"flames.blue/internal/content"
)

// DefaultSceneURL is the 3D scene shown behind the hero
const DefaultSceneURL = "https://prod.spline.design/VJLoxp84lCdVfdZu/scene.splinecode"

// Settings holds the values read from the environment
type Settings struct {
	ServerAddr   string        `env:"SERVER_ADDR" envDefault:":8080"`
	DefaultTheme string        `env:"DEFAULT_THEME" envDefault:"dark"`
	ContentDir   string        `env:"CONTENT_DIR"`
	SceneURL     string        `env:"SCENE_URL" envDefault:"https://prod.spline.design/VJLoxp84lCdVfdZu/scene.splinecode"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	StrictAudit  bool          `env:"STRICT_AUDIT" envDefault:"false"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
}

// Config holds all application configuration
type Config struct {
	Settings
	Registry *content.Registry
}

// Load parses the environment and reads the content registry
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg.Settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	reg, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if _, err := reg.Site(cfg.DefaultTheme); err != nil {
		return nil, fmt.Errorf("default theme: %w", err)
	}
	cfg.Registry = reg
	return &cfg, nil
}
