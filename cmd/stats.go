// file:sfx/cmd/stats.go
package cmd

import (
	"fmt"

	"github.com/rskv-p/sfx/pkg/x_log"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [pattern]",
		Short: "Print node, edge and leaf counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.build(cmd, args)
			if err != nil {
				return err
			}
			defer tr.Close()

			st := tr.Stats()
			rows := []struct {
				key string
				val int
			}{
				{"length", len(tr.Pattern())},
				{"nodes", st.Nodes},
				{"edges", st.Edges},
				{"leaves", st.Leaves},
				{"internal", st.Internal},
				{"terminals", st.Terminals},
				{"depth", st.Depth},
			}

			out := cmd.OutOrStdout()
			styles := x_log.DefaultStylesByName(a.cfg.Log.Style)
			styles.NoColor = !styled(out)
			for _, r := range rows {
				fmt.Fprintf(out, "%s %d\n", styles.RenderKey(fmt.Sprintf("%-10s", r.key+":")), r.val)
			}
			return nil
		},
	}
}
