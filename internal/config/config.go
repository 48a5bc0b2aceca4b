// Package config loads showcase settings from flags, UIKIT_* environment
// variables, and an optional TOML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"uikit/internal/disclosure"
	"uikit/internal/popover"
	"uikit/internal/tabs"
)

// ErrNegativeDelay is returned by Validate when tooltip.delay < 0.
var ErrNegativeDelay = errors.New("tooltip delay must not be negative")

// Config holds application configuration.
type Config struct {
	Tooltip   TooltipConfig   `mapstructure:"tooltip"`
	Accordion AccordionConfig `mapstructure:"accordion"`
	Dialog    DialogConfig    `mapstructure:"dialog"`
	Tabs      TabsConfig      `mapstructure:"tabs"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	UI        UIConfig        `mapstructure:"ui"`
}

// TooltipConfig holds popover defaults.
type TooltipConfig struct {
	Delay     time.Duration `mapstructure:"delay"`
	Placement string        `mapstructure:"placement"`
}

// AccordionConfig holds disclosure group defaults.
type AccordionConfig struct {
	Mode string `mapstructure:"mode"`
}

// DialogConfig holds dialog defaults.
type DialogConfig struct {
	Title           string `mapstructure:"title"`
	CloseOnBackdrop bool   `mapstructure:"close_on_backdrop"`
}

// TabsConfig holds tab set defaults.
type TabsConfig struct {
	Orientation string `mapstructure:"orientation"`
}

// CatalogConfig points at showcase content. Empty uses the built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the log file. Empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TelemetryConfig controls OTLP export. Empty Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"tooltip-delay":     "tooltip.delay",
	"tooltip-placement": "tooltip.placement",
	"accordion-mode":    "accordion.mode",
	"dialog-title":      "dialog.title",
	"close-on-backdrop": "dialog.close_on_backdrop",
	"tabs-orientation":  "tabs.orientation",
	"catalog":           "catalog.path",
	"log-file":          "log.file",
	"log-level":         "log.level",
	"otlp-endpoint":     "telemetry.endpoint",
	"mouse":             "ui.mouse",
	"alt-screen":        "ui.alt_screen",
}

// Load reads configuration from os.Args.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs reads configuration from args, the environment and the config
// file. Env var overrides use prefix UIKIT_; the file is --config, then
// UIKIT_CONFIG, then ~/.config/uikit/config.toml if present.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("showcase", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	fs.Duration("tooltip-delay", popover.DefaultDelay, "tooltip show delay")
	fs.String("tooltip-placement", "bottom", "default tooltip placement (top|right|bottom|left)")
	fs.String("accordion-mode", "single", "accordion open policy (single|multiple)")
	fs.String("dialog-title", "Modal Title", "dialog heading")
	fs.Bool("close-on-backdrop", true, "close the dialog on backdrop clicks")
	fs.String("tabs-orientation", "horizontal", "tab strip orientation (horizontal|vertical)")
	fs.String("catalog", "", "path to a TOML showcase catalog")
	fs.String("log-file", "", "write debug logs to this file")
	fs.String("log-level", "info", "log level")
	fs.String("otlp-endpoint", "", "OTLP/HTTP collector host:port")
	fs.Bool("mouse", true, "enable mouse support")
	fs.Bool("alt-screen", true, "use the alternate screen")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetDefault("telemetry.service_name", "uikit-showcase")
	v.SetDefault("telemetry.insecure", true)
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetConfigType("toml")
	path := *configPath
	if path == "" {
		path = os.Getenv("UIKIT_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "uikit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("UIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if c.Tooltip.Delay < 0 {
		return fmt.Errorf("tooltip.delay %s: %w", c.Tooltip.Delay, ErrNegativeDelay)
	}
	if _, err := popover.ParsePlacement(c.Tooltip.Placement); err != nil {
		return fmt.Errorf("tooltip.placement: %w", err)
	}
	if _, err := disclosure.ParseMode(c.Accordion.Mode); err != nil {
		return fmt.Errorf("accordion.mode: %w", err)
	}
	if _, err := tabs.ParseOrientation(c.Tabs.Orientation); err != nil {
		return fmt.Errorf("tabs.orientation: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Placement returns the parsed tooltip placement. Call after Validate.
func (c Config) Placement() popover.Placement {
	p, _ := popover.ParsePlacement(c.Tooltip.Placement)
	return p
}

// Mode returns the parsed accordion mode. Call after Validate.
func (c Config) Mode() disclosure.Mode {
	m, _ := disclosure.ParseMode(c.Accordion.Mode)
	return m
}

// Orientation returns the parsed tab orientation. Call after Validate.
func (c Config) Orientation() tabs.Orientation {
	o, _ := tabs.ParseOrientation(c.Tabs.Orientation)
	return o
}
