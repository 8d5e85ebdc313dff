package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trisolve/cmd/trisolve/ui"
	"trisolve/internal/config"
	"trisolve/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Effective configuration, loaded before every command
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trisolve",
	Short: "trisolve - triangle solver",
	Long: `trisolve computes the missing sides and angles of a triangle from three
measurements given in one of the congruence schemas:

  SWS  two sides and the angle between them
  WSW  two angles and the side between them
  SSS  three sides
  SSW  two sides and an angle that is not between them

It then checks and classifies the result. Angles are in degrees.

Run without arguments to start the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The form owns the terminal; keep log lines off it.
		if isInteractive(cmd) {
			logger = zap.NewNop()
			logging.Use(logger, cfg.Logging)
			return nil
		}

		logger, err = logging.Setup(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Get(logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("path", resolvedConfigPath()),
			zap.String("format", cfg.Output.Format))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runForm,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .trisolve/config.yaml)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isInteractive reports whether cmd runs the form: either the form command
// or the bare root, which is the only command without a parent.
func isInteractive(cmd *cobra.Command) bool {
	return cmd == formCmd || !cmd.HasParent()
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// currentConfig returns the loaded config, or defaults when a command runs
// without the root pre-run (as in tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// newRenderer resolves output flags against the config. An empty format and
// a negative precision mean "use the config".
func newRenderer(format string, precision int) (ui.Renderer, error) {
	c := currentConfig()
	if format == "" {
		format = c.Output.Format
	}
	f, err := ui.ParseFormat(format)
	if err != nil {
		return ui.Renderer{}, err
	}
	if precision < 0 {
		precision = c.Output.Precision
	}
	if precision > config.MaxPrecision {
		return ui.Renderer{}, fmt.Errorf("precision must be at most %d", config.MaxPrecision)
	}
	return ui.Renderer{
		Format:    f,
		Precision: precision,
		Styles:    ui.NewStyles(ui.ThemeByName(c.Output.Theme)),
	}, nil
}
