package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DataspacesCmd returns the `eligibility dataspaces` command.
func DataspacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataspaces",
		Short: "List dataspaces",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := loadClient()
			if err != nil {
				return err
			}
			items, err := client.ListDataspaces()
			if err != nil {
				return fmt.Errorf("list dataspaces: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no dataspaces found")
				return nil
			}
			for _, ds := range items {
				fmt.Fprintf(out, "  %s  %s\n", ds.ID, ds.Name)
			}
			return nil
		},
	}
}
