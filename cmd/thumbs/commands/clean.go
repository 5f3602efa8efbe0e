package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/thumbs/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove thumbnails and failure markers written by thumbs",
		Long:  "Remove thumbnails and failure markers written by thumbs.\nThumbnails of other applications in the shared cache are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fail, _ := cmd.Flags().GetBool("fail")
			all, _ := cmd.Flags().GetBool("all")

			var opts app.CleanOptions
			switch {
			case all:
				opts.Thumbnails = true
				opts.FailMarkers = true
			case fail:
				opts.FailMarkers = true
			default:
				opts.Thumbnails = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("fail", "f", false, "Remove only this generator's failure markers")
	cmd.Flags().BoolP("all", "a", false, "Remove this generator's thumbnails and failure markers")

	return cmd
}
