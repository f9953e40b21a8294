package cmd

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/filerelay/filerelay-dock/internal/config"
	"github.com/filerelay/filerelay-dock/internal/logger"
	"github.com/filerelay/filerelay-dock/internal/platform"
	"github.com/filerelay/filerelay-dock/internal/ui"
)

// ConfigEnv names the environment variable consulted when --config is not given.
const ConfigEnv = config.EnvPrefix + "_CONFIG"

var (
	configPath            string
	logFile               string
	debugMode             bool
	version, commit, date string
)

var log = logger.ComponentLogger("cmd")

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "filerelay-dock",
	Short: "A small always-on-top dock that holds files and drags them on",
	Long: `FileRelay Dock keeps a short list of files dropped onto it and drags them
onto any other window as a regular file drop.

Drop files to replace the list, hold Ctrl while dropping to append.
Right-click shows the list, Ctrl + right-click quits.`,
	RunE:          runDock,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: config.toml beside the executable, or $"+ConfigEnv+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: filerelay-dock.log in the temp directory)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("filerelay-dock %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("filerelay-dock %s\n", version)
}

// resolveConfigPath picks the flag, then the environment, then the default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return config.DefaultPath()
}

func resolveLogPath() string {
	if logFile != "" {
		return logFile
	}
	return logger.DefaultPath()
}

func initLogging() {
	if err := logger.Init(resolveLogPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger.SetDebug(debugMode)
}

func loadSettings() *config.Settings {
	path := resolveConfigPath()
	written, err := config.EnsureDefaultFile(path)
	if err != nil {
		log.Warn("default config not written", "path", path, "error", err)
	} else if written {
		log.Info("default config written", "path", path)
	}

	settings := config.Load(path)
	log.Debug("config loaded", "settings", settings)
	return settings
}

func runDock(cmd *cobra.Command, args []string) error {
	initLogging()
	defer logger.Close()

	log.Info("starting", "version", version)

	settings := loadSettings()

	lock, err := platform.AcquireInstance(ui.InstanceName)
	switch {
	case errors.Is(err, platform.ErrAlreadyRunning):
		log.Info("another instance is running, exiting")
		if settings.Window.ShowSingleTip {
			notifyAlreadyRunning(settings.Window.Language)
		}
		return nil
	case err != nil:
		// Running twice is better than not running at all.
		log.Warn("single instance guard unavailable", "error", err)
	}
	defer lock.Release()

	if err := platform.InitDragDrop(); err != nil {
		log.Warn("drag out disabled", "error", err)
	}
	defer platform.ShutdownDragDrop()

	a := app.NewWithID(ui.AppID)
	a.SetIcon(ui.LogoResource)
	a.Settings().SetTheme(ui.NewDockTheme(settings.Style))

	ui.NewDock(a, settings, ui.Deps{}).Run()

	log.Info("stopped")
	return nil
}

func notifyAlreadyRunning(language string) {
	l := ui.NewLocalization()
	l.SetLanguage(language)
	if err := platform.ShowInfo(l.GetText(ui.KeyNotice), l.GetText(ui.KeyAlreadyRunning)); err != nil {
		log.Debug("already-running notice failed", "error", err)
	}
}
