package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/thumbs/internal/app"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <path>",
		Short: "Show where the thumbnail of an image is cached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			large, _ := cmd.Flags().GetBool("large")

			report, err := c.app.Locate(cmd.Context(), args[0], app.LocateOptions{Large: large})
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolP("large", "l", false, "Use the large (256px) size tier")
	return cmd
}

func printReport(w io.Writer, r app.LocateReport) {
	row := func(key, value string) {
		_, _ = fmt.Fprintf(w, "%-10s %s\n", key+":", value)
	}

	row("uri", r.Location.URI)
	row("key", r.Location.Key)
	row("tier", r.Location.Tier.String())
	row("thumbnail", r.Location.Path)

	if r.SourceExists {
		row("source", time.Unix(r.SourceMTime, 0).UTC().Format(time.RFC3339))
	} else {
		row("source", "missing")
	}

	switch {
	case r.Entry == nil:
		row("state", "missing")
	case r.Fresh:
		row("state", "fresh")
	default:
		row("state", "stale")
	}

	if r.Entry != nil {
		row("size", fmt.Sprintf("%dx%d", r.Entry.Width, r.Entry.Height))
		if r.Entry.SourceWidth > 0 {
			row("original", fmt.Sprintf("%dx%d", r.Entry.SourceWidth, r.Entry.SourceHeight))
		}
		if r.Entry.Generator != "" {
			row("software", r.Entry.Generator)
		}
	}

	if r.FailMarker != nil {
		state := "stale"
		if r.SourceExists && r.FailMarker.IsFreshFor(r.SourceMTime) {
			state = "fresh"
		}
		row("failed", fmt.Sprintf("%s (%s)", r.Location.FailPath, state))
	}
}
