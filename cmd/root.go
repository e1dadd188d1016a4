package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeevibe/engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jeevibe",
	Short: "Adaptive JEE preparation engine",
	Long:  "Jeevibe — adaptive JEE preparation backend with IRT proficiency tracking, adaptive quiz selection, spaced repetition and AI-assisted practice over SQLite.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides JEEVIBE_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides the configured db.path)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration: file, then environment,
// then command-line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
