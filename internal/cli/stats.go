package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats <script>",
		Short: "Show per-sense statistics for each dimension",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	r, err := replay(cmd, args[0])
	if err != nil {
		return err
	}

	stats := r.Registry.Stats()
	if formatFlag != "text" {
		return writeJSON(cmd, stats)
	}

	for _, d := range model.Dimensions() {
		senses := make([]string, 0, len(stats[d]))
		for sense := range stats[d] {
			senses = append(senses, sense)
		}
		sort.Strings(senses)
		for _, sense := range senses {
			st := stats[d][sense]
			occ := "-"
			if st.NumberOccurrences != nil {
				occ = fmt.Sprint(*st.NumberOccurrences)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s registers=%d occurrences=%s\n", d, sense, st.NumberRegisters, occ)
		}
	}
	return nil
}
