package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/memory"
	"github.com/rcliao/memgraph/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify <event>...",
		Short: "Show which dimension an identifier's suffix selects",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	}

	RootCmd.AddCommand(cmd)
}

type classification struct {
	Event     string          `json:"event"`
	Dimension model.Dimension `json:"dimension,omitempty"`
	Key       string          `json:"key,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := make([]classification, 0, len(args))
	for _, ev := range args {
		c := classification{Event: ev}
		if key, d, ok := memory.SplitSuffix(ev); ok {
			c.Dimension = d
			c.Key = key
		}
		out = append(out, c)
	}

	if formatFlag != "text" {
		return writeJSON(cmd, out)
	}
	for _, c := range out {
		if c.Dimension == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", c.Event)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.Event, c.Dimension, c.Key)
	}
	return nil
}
