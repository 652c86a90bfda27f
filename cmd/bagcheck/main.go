package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/config"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/logging"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool
	hints      bool
	station    string
	logLevel   string
	logFormat  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bagcheck",
	Short: "Bag-drop kiosk: scan a boarding pass and bag tag, measure the bag, get a decision",
	Long: `bagcheck runs the bag-drop kiosk wizard in the terminal.

Each step asks for one reading. An empty or invalid reading keeps the kiosk
on the same step. Bags up to 55 x 40 x 20 cm are approved.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runWizard,
}

// loadConfig resolves the configuration and applies it to logging and color.
// Flags win over the environment, which wins over the config file.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("station") {
		c.Station = station
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = logFormat
	}
	if flags.Changed("hints") {
		c.Hints = hints
	}
	if flags.Changed("no-color") {
		c.NoColor = noColor
	}
	if err := c.Validate(); err != nil {
		return err
	}

	color := !c.NoColor && ui.ShouldUseColor()
	if err := logging.Configure(c.LogLevel, c.LogFormat, cmd.ErrOrStderr(), color); err != nil {
		return err
	}
	ui.SetColorEnabled(color)

	cfg = c
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default $%s or <user config dir>/bagcheck/kiosk.toml)", config.PathEnv))
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&hints, "hints", false, "say when a reading was not accepted")
	rootCmd.PersistentFlags().StringVar(&station, "station", "", "kiosk station name recorded in logs and summaries")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "kiosk", Title: "Kiosk:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Kiosk
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(decideCmd)

	// System
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
