package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/memory"
	"github.com/rcliao/memgraph/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump <script>",
		Short: "Print confirmed records or pending episodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}

	cmd.Flags().StringP("dimension", "D", "", "Only this dimension: biological, emotional, cultural")
	cmd.Flags().Bool("episodes", false, "Print provisional episodes instead of confirmed records")

	RootCmd.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	dim, _ := cmd.Flags().GetString("dimension")
	episodes, _ := cmd.Flags().GetBool("episodes")

	dims := model.Dimensions()
	if dim != "" {
		if !model.Dimension(dim).Valid() {
			return fmt.Errorf("dump: %w %q", memory.ErrUnknownDimension, dim)
		}
		dims = []model.Dimension{model.Dimension(dim)}
	}

	r, err := replay(cmd, args[0])
	if err != nil {
		return err
	}

	if episodes {
		out := make(map[model.Dimension][]model.Episode, len(dims))
		for _, d := range dims {
			g, _ := r.Registry.Graph(d)
			out[d] = g.Episodes()
		}
		if formatFlag != "text" {
			return writeJSON(cmd, out)
		}
		for _, d := range dims {
			for _, e := range out[d] {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\n", d, e.Event, e.Sense, e.NeuronNumber, formatPatterns(e.PatternList))
			}
		}
		return nil
	}

	out := make(map[model.Dimension]map[string]model.Record, len(dims))
	for _, d := range dims {
		g, _ := r.Registry.Graph(d)
		out[d] = g.All()
	}
	if formatFlag != "text" {
		return writeJSON(cmd, out)
	}
	for _, d := range dims {
		keys := make([]string, 0, len(out[d]))
		for k := range out[d] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rec := out[d][k]
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\t%s\n",
				d, rec.Event, rec.Sense, rec.NeuronNumber, formatPatterns(rec.PatternList), strings.Join(rec.LinkedTo, ","))
		}
	}
	return nil
}

func formatPatterns(p model.Patterns) string {
	if !p.Valid {
		return "-"
	}
	return "[" + strings.Join(p.IDs, ",") + "]"
}
