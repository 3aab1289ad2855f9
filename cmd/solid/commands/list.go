package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available principles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, p := range principles {
				fmt.Fprintf(w, "%-4s %-32s (%s)\n", p.name, p.title, strings.Join(p.aliases, ", "))
			}
			return nil
		},
	}
}
