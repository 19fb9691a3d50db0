package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chains <script>",
		Short: "Reconstruct causal chains per sense",
		Long: "Replay an event script, then reconstruct the causal chain of every sense in the " +
			"config for each dimension the config enables.",
		Args: cobra.ExactArgs(1),
		RunE: runChains,
	}

	RootCmd.AddCommand(cmd)
}

func runChains(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := replay(cmd, args[0])
	if err != nil {
		return err
	}

	chains, err := r.Registry.CausalChains(cfg.Senses)
	if err != nil {
		return fmt.Errorf("chains: %w", err)
	}
	if formatFlag != "text" {
		return writeJSON(cmd, chains)
	}

	senses := make([]string, 0, len(chains))
	for sense := range chains {
		senses = append(senses, sense)
	}
	sort.Strings(senses)
	for _, sense := range senses {
		for _, d := range model.Dimensions() {
			chain, ok := chains[sense][d]
			if !ok {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %s\n", sense, d, strings.Join(chain, " -> "))
		}
	}
	return nil
}
