package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/opusquiz/internal/app"
	"github.com/abhisek/opusquiz/internal/config"
	"github.com/abhisek/opusquiz/internal/media"
	"github.com/abhisek/opusquiz/internal/screens/quiz"
	"github.com/abhisek/opusquiz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz (the default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice(config.KeyGroup, nil, "Group to quiz on, repeatable; skips the setup screen")
	f.String(config.KeyMode, string(session.ModeWrite), "Answer mode: write or choice")
	f.Uint64(config.KeySeed, 0, "Shuffle seed; 0 picks a random one")
	f.Bool(config.KeyNoMedia, false, "Do not open clips in the browser")
}

// runApp resolves configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, cfgFile, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := setupLogging(cfg, "")
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	shuffler := session.NewShuffler(seed)

	logger.Info("starting quiz",
		"config_file", cfgFile,
		"catalog_items", cat.Len(),
		"groups", cfg.Groups,
		"mode", string(cfg.Mode),
		"seed", seed,
	)

	quizOpts := quiz.Options{
		Mode:     cfg.Mode,
		Shuffler: shuffler,
		Logger:   logger,
	}
	if !cfg.NoMedia {
		quizOpts.Player = media.NewBrowserPlayer()
	}

	return app.Run(app.Options{
		Catalog: cat,
		Controller: session.New(
			session.WithShuffler(shuffler),
			session.WithLogger(logger),
		),
		Quiz:   quizOpts,
		Groups: cfg.Groups,
		Logger: logger,
	})
}
