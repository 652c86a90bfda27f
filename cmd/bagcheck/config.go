package main

import (
	"fmt"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Inspect the kiosk configuration",
	GroupID: "system",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Encode(cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path that would be read",
	Args:  cobra.NoArgs,
	// Skip loading: the file may not exist yet.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
