package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

// SegmentsCmd returns the `eligibility segments <term>` command.
func SegmentsCmd() *cobra.Command {
	var dataspaceID string
	cmd := &cobra.Command{
		Use:   "segments <term>",
		Short: "Search segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := loadClient()
			if err != nil {
				return err
			}
			items, err := client.SearchSegments(args[0], dataspaceID)
			if err != nil {
				return fmt.Errorf("search segments: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no segments found")
				return nil
			}
			for _, seg := range items {
				line := fmt.Sprintf("  %s  %s", seg.ID, components.SanitizeOneLine(seg.Name))
				if desc := components.SanitizeOneLine(components.StripMarkup(seg.Description)); desc != "" {
					line += "  (" + desc + ")"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataspaceID, "dataspace", "", "dataspace id to search in")
	return cmd
}
