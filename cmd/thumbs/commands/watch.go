package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/thumbs/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Keep thumbnails of a directory up to date while files change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			large, _ := cmd.Flags().GetBool("large")
			recursive, _ := cmd.Flags().GetBool("recursive")
			workers, _ := cmd.Flags().GetInt("workers")

			return c.app.Watch(cmd.Context(), dir, app.WatchOptions{
				Large:     large,
				Recursive: recursive,
				Workers:   workers,
			})
		},
	}
	cmd.Flags().BoolP("large", "l", false, "Use the large (256px) size tier")
	cmd.Flags().BoolP("recursive", "r", false, "Watch subdirectories too")
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent workers (default from config)")
	return cmd
}
