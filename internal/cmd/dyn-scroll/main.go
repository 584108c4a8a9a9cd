package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/cache"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	"github.com/leighmacdonald/dyn-scroll/internal/ui"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgDir         string
	rootCmd        = &cobra.Command{
		Use:   "dyn-scroll",
		Short: "Dynamic scroll carousel",
		Long:  `dyn-scroll - An image carousel that switches between vertical and horizontal scrolling`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about dyn-scroll",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "Directory containing dyn-scroll.yaml")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("dyn-scroll - Dynamic Scroll View Concept\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                 //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                   //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)            //nolint:forbidigo
}

// run is the main entry point of dyn-scroll.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	var searchPaths []string
	if cfgDir != "" {
		searchPaths = append(searchPaths, cfgDir)
	}

	configLoader := config.NewLoader(configUpdates, searchPaths...)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting dyn-scroll", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	cachePath := config.PathCache(config.CacheDirName)

	var renderCache cache.Cache = cache.Noop{}
	if userConfig.CacheEnabled {
		fsCache, errCache := cache.New(cachePath)
		if errCache != nil {
			return errors.Join(errCache, errApp)
		}
		renderCache = fsCache
	}

	gallery, errGallery := assets.Load(cmd.Context(), userConfig.AssetsDir, userConfig.ItemCount, renderCache)
	if errGallery != nil {
		return errors.Join(errGallery, errApp)
	}

	configLoader.Watch()

	done := make(chan any)
	app := NewApp(userConfig, configUpdates)
	program := app.createUI(cmd.Context(), gallery, ui.BuildInfo{
		Version:    BuildVersion,
		Date:       BuildDate,
		Commit:     BuildCommit,
		ConfigPath: configLoader.Path(),
		CachePath:  cachePath,
	})

	go func() {
		if err := program.Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		done <- true
	}()

	app.Start(cmd.Context(), done)

	return nil
}
