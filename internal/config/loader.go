package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching searchPaths for the config file. With no paths the
// XDG config dir and the working directory are searched.
func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("item_count", DefaultItemCount)
	loader.SetDefault("start_axis", "vertical")
	loader.SetDefault("assets_dir", "")
	loader.SetDefault("fps", 60)
	loader.SetDefault("toggle_policy", "ignore")
	loader.SetDefault("opacity_delay_ms", 100)
	loader.SetDefault("offset_delay_ms", 100)
	loader.SetDefault("fade_in_delay_ms", 400)
	loader.SetDefault("spring_frequency", 6.0)
	loader.SetDefault("spring_damping", 0.6)
	loader.SetDefault("snap_delay_ms", 150)
	loader.SetDefault("cache_enabled", true)
	loader.SetDefault("debug", false)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)

	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}

	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}

	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file, sending every valid reload on the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config, keeping previous", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

// Read loads the config file if one exists and applies env overrides and defaults.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
