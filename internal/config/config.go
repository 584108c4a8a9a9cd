package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
)

var (
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "dyn-scroll"
	DefaultConfigName = "dyn-scroll"
	DefaultLogName    = "dyn-scroll.log"
	CacheDirName      = "cache"
	EnvPrefix         = "dynscroll"
	DefaultItemCount  = 5
)

type Config struct {
	ItemCount int    `mapstructure:"item_count"`
	StartAxis string `mapstructure:"start_axis"`
	// AssetsDir is searched for images named after their index, 0.png, 1.jpg and so on. When
	// empty or when an image is missing a generated placeholder is shown instead.
	AssetsDir    string `mapstructure:"assets_dir"`
	FPS          int    `mapstructure:"fps"`
	TogglePolicy string `mapstructure:"toggle_policy"`
	// Delays of the deferred toggle steps, measured from the button press.
	OpacityDelayMs  int     `mapstructure:"opacity_delay_ms"`
	OffsetDelayMs   int     `mapstructure:"offset_delay_ms"`
	FadeInDelayMs   int     `mapstructure:"fade_in_delay_ms"`
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
	// SnapDelayMs is how long free wheel scrolling must be idle before snapping to an item.
	SnapDelayMs  int  `mapstructure:"snap_delay_ms"`
	CacheEnabled bool `mapstructure:"cache_enabled"`
	Debug        bool `mapstructure:"debug"`
}

// Axis returns the parsed start axis.
func (c Config) Axis() scroll.Axis {
	axis, _ := scroll.ParseAxis(c.StartAxis)

	return axis
}

// Policy returns the parsed toggle re-entrancy policy.
func (c Config) Policy() toggle.Policy {
	policy, _ := toggle.ParsePolicy(c.TogglePolicy)

	return policy
}

func (c Config) Timings() toggle.Timings {
	return toggle.Timings{
		OpacityDelay: time.Duration(c.OpacityDelayMs) * time.Millisecond,
		OffsetDelay:  time.Duration(c.OffsetDelayMs) * time.Millisecond,
		FadeInDelay:  time.Duration(c.FadeInDelayMs) * time.Millisecond,
	}
}

func (c Config) SnapDelay() time.Duration {
	return time.Duration(c.SnapDelayMs) * time.Millisecond
}

func (c Config) Validate() error {
	var errs []error
	if c.ItemCount < 1 {
		errs = append(errs, fmt.Errorf("item_count must be at least 1, got %d", c.ItemCount)) //nolint:err113
	}

	if _, err := scroll.ParseAxis(c.StartAxis); err != nil {
		errs = append(errs, err)
	}

	if _, err := toggle.ParsePolicy(c.TogglePolicy); err != nil {
		errs = append(errs, err)
	}

	if c.OpacityDelayMs < 0 || c.OffsetDelayMs < 0 || c.FadeInDelayMs < 0 || c.SnapDelayMs < 0 {
		errs = append(errs, errors.New("delays cannot be negative")) //nolint:err113
	}

	if c.FadeInDelayMs < c.OpacityDelayMs || c.FadeInDelayMs < c.OffsetDelayMs {
		errs = append(errs, errors.New("fade_in_delay_ms must not be shorter than the hide and move delays")) //nolint:err113
	}

	if c.FPS < 1 || c.FPS > 120 {
		errs = append(errs, fmt.Errorf("fps must be within 1-120, got %d", c.FPS)) //nolint:err113
	}

	if c.SpringFrequency <= 0 || c.SpringDamping <= 0 {
		errs = append(errs, errors.New("spring_frequency and spring_damping must be positive")) //nolint:err113
	}

	if len(errs) > 0 {
		return errors.Join(append(errs, errConfigInvalid)...)
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
