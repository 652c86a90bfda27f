package main

import (
	"encoding/json"
	"fmt"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/ui"
	"github.com/spf13/cobra"
)

// decision is the --json shape of the decide command.
type decision struct {
	Dimensions model.Dimensions `json:"dimensions"`
	Allowed    model.Dimensions `json:"allowed"`
	Decision   model.Decision   `json:"decision"`
}

var decideCmd = &cobra.Command{
	Use:     "decide <length> <width> <height>",
	Short:   "Print the decision for a bag of the given size in centimeters",
	GroupID: "kiosk",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := model.ParseDimensions(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		result := decision{
			Dimensions: d,
			Allowed:    model.AllowedDimensions,
			Decision:   model.Decide(d),
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling decision: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintf(out, "Dimensions: %s\n", result.Dimensions)
		fmt.Fprintf(out, "Allowed:    %s\n", ui.RenderMuted(result.Allowed.String()))
		fmt.Fprintf(out, "Decision:   %s\n", ui.RenderDecision(result.Decision))
		return nil
	},
}
