package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/thumbs/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [paths...]",
		Aliases: []string{"gen"},
		Short:   "Serve thumbnails for images, generating them when missing or stale",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			large, _ := cmd.Flags().GetBool("large")
			workers, _ := cmd.Flags().GetInt("workers")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			strict, _ := cmd.Flags().GetBool("strict")
			recursive, _ := cmd.Flags().GetBool("recursive")

			if ci {
				outputMode = "linear"
			}

			_, err := c.app.Generate(cmd.Context(), args, app.GenerateOptions{
				Large:      large,
				Workers:    workers,
				OutputMode: outputMode,
				Strict:     strict,
				Recursive:  recursive,
			})
			return err
		},
	}
	cmd.Flags().BoolP("large", "l", false, "Use the large (256px) size tier")
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent workers (default from config)")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().Bool("strict", false, "Exit with an error if any thumbnail failed")
	cmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories of directory arguments")
	return cmd
}
