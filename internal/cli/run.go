package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an event script",
		Long:  "Replay an event script into fresh memory graphs and print a summary with statistics.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}

	RootCmd.AddCommand(cmd)
}

type runSummary struct {
	RunID string                                           `json:"run_id"`
	Steps int                                              `json:"steps"`
	Stats map[model.Dimension]map[string]model.SenseStats `json:"stats"`
}

func runRun(cmd *cobra.Command, args []string) error {
	r, err := replay(cmd, args[0])
	if err != nil {
		return err
	}

	if formatFlag == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d steps applied\n", r.ID, r.Result.Steps)
		return nil
	}
	return writeJSON(cmd, runSummary{
		RunID: r.ID,
		Steps: r.Result.Steps,
		Stats: r.Registry.Stats(),
	})
}
