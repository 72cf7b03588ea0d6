package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"voicekiosk/internal/catalog"
	"voicekiosk/internal/config"
	"voicekiosk/internal/logging"
	"voicekiosk/internal/session"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	language    string
	catalogPath string

	logger *zap.Logger

	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "Voice-kiosk conversational core",
	Long: `kiosk drives the conversational core of a voice ordering kiosk:
fuzzy menu matching over a bilingual catalog, option resolution, and the
order state machine from greeting to payment.

Run without arguments to start the interactive order simulator.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if language != "" {
			cfg.Language = language
		}
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		var categories map[string]bool
		if len(cfg.Logging.Categories) > 0 {
			categories = make(map[string]bool, len(cfg.Logging.Categories))
			for _, c := range cfg.Logging.Categories {
				categories[c] = true
			}
		}
		return logging.Configure(logging.Options{
			Dir:        cfg.Logging.Dir,
			Debug:      cfg.Logging.Debug,
			Level:      cfg.Logging.Level,
			Categories: categories,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to kiosk config YAML")
	rootCmd.PersistentFlags().StringVarP(&language, "lang", "l", "", "override language (ko|en)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "override catalog YAML path")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(catalogCmd)
}

// sessionConfig maps the loaded file config onto controller settings; every
// controller the commands create goes through here so config keys stay live.
func sessionConfig() session.Config {
	return session.Config{
		Language:    cfg.Language,
		DedupWindow: cfg.Session.DedupWindow,
	}
}

// loadCatalog resolves the configured catalog, falling back to the built-in
// demo menu when no file is configured.
func loadCatalog() (*catalog.Snapshot, error) {
	if cfg.CatalogPath == "" {
		logger.Info("no catalog configured, using demo menu")
		return catalog.Demo(), nil
	}
	snap, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("products", len(snap.Products)),
		zap.Int("dropped", snap.Dropped))
	return snap, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
