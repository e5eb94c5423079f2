package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ruminaider/compactbar/internal/config"
	"github.com/ruminaider/compactbar/internal/paths"
	"github.com/spf13/cobra"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

var version = "0.1.0"

var (
	configPath string
	themeFlag  string
	logLevel   string

	// appConfig is resolved once per invocation, before any subcommand runs.
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "compactbar",
	Short: "Compact tab bar plugin for terminal multiplexers",
	Long: "compactbar renders a multiplexer session's tabs as a single row of numbered segments " +
		"followed by the current input mode, and switches tabs on click or scroll.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		appConfig = cfg
		logger := newLogger(cfg.LogLevel)
		cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), logger))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "compactbar %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", paths.ConfigFile(), "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Catppuccin flavor (latte, frappe, macchiato, mocha)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("compactbar command failed")
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	overrides := map[string]string{}
	if f := cmd.Flag("theme"); f != nil && f.Changed {
		overrides["theme"] = themeFlag
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		overrides["log_level"] = logLevel
	}
	cfg, err = config.FromMap(cfg, overrides)
	if err != nil {
		return config.Config{}, fmt.Errorf("applying flags: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) pslog.Logger {
	opts := pslog.Options{Mode: pslog.ModeConsole}
	switch level {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		opts.MinLevel = pslog.InfoLevel
	}
	return pslog.NewWithOptions(os.Stderr, opts)
}
