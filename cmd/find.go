// file:sfx/cmd/find.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <sub> [pattern]",
		Short: "Report whether sub occurs in the pattern",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd, args[1:])
			if err != nil {
				return err
			}
			defer tr.Close()

			fmt.Fprintln(cmd.OutOrStdout(), tr.Contains(args[0]))
			return nil
		},
	}
}
