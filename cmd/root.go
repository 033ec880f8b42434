package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/config"
	"github.com/abhisek/opusquiz/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "opusquiz",
	Short: "Listening quiz for classical repertoire",
	Long: `Opus Quiz plays short clips of classical pieces and asks you to name the
composer and title. Small spelling mistakes are forgiven.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyConfig, "", "Path to a config file (default ./opusquiz.toml or ~/.config/opusquiz/opusquiz.toml)")
	pf.String(config.KeyCatalog, "", "Path to a TOML catalog (default: built-in catalog)")
	pf.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, "text", "Log format: text or json")
	pf.String(config.KeyLogFile, "", "Log file path, or - for stderr (default $XDG_STATE_HOME/opusquiz/opusquiz.log)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// viperForCmd binds a command's flags, OPUSQUIZ_* environment variables
// and the config file to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) (*viper.Viper, string, error) {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, "", fmt.Errorf("bind flags: %w", err)
	}
	explicit, _ := cmd.Flags().GetString(config.KeyConfig)
	used, err := config.ReadFile(v, explicit)
	if err != nil {
		return nil, "", err
	}
	return v, used, nil
}

// loadConfig resolves the configuration for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	v, used, err := viperForCmd(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config: %w", err)
	}
	return cfg, used, nil
}

// setupLogging builds the logger described by cfg and installs it as the
// slog default. defaultFile is used when no log file is configured.
func setupLogging(cfg config.Config, defaultFile string) (*slog.Logger, io.Closer, error) {
	file := cfg.Log.File
	if file == "" {
		file = defaultFile
	}
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   file,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}
	slog.SetDefault(logger)
	return logger, closer, nil
}

// loadCatalog returns the catalog at path, or the built-in one.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
