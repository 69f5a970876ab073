// file:sfx/cmd/dump.go
package cmd

import (
	"github.com/rskv-p/sfx/pkg/x_log"

	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [pattern]",
		Short: "Print the tree structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd, args)
			if err != nil {
				return err
			}
			defer tr.Close()

			out := cmd.OutOrStdout()
			if styled(out) {
				tr.DumpWith(out, x_log.DefaultStylesByName(a.cfg.Log.Style))
				return nil
			}
			tr.Dump(out)
			return nil
		},
	}
}
