package app

import (
	"flag"
	"log/slog"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	StorePath  string
	LogLevel   string
	Width      int
	Height     int
	TPS        int
	Seed       int64
	HUDWidth   int
	Autosave   time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		StorePath: "sand-state",
		LogLevel:  "info",
		Width:     160,
		Height:    120,
		TPS:       60,
		Seed:      42,
		HUDWidth:  220,
		Autosave:  time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML tuning file")
	fs.StringVar(&c.StorePath, "store", c.StorePath, "state store: memory, a .db file, or a directory")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.DurationVar(&c.Autosave, "autosave", c.Autosave, "interval between grid saves")
}

// Level maps the -log-level flag to a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
