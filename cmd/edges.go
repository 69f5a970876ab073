// file:sfx/cmd/edges.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges [pattern]",
		Short: "Print every edge label in preorder, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd, args)
			if err != nil {
				return err
			}
			defer tr.Close()

			out := cmd.OutOrStdout()
			for label := range tr.Edges() {
				fmt.Fprintln(out, label)
			}
			return nil
		},
	}
}
