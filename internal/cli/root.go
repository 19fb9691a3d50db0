// Package cli implements the memgraph CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rcliao/memgraph/internal/config"
	"github.com/rcliao/memgraph/internal/memory"
	"github.com/rcliao/memgraph/internal/script"
)

var (
	configPath string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memgraph",
	Short: "Associative memory graphs across biological, emotional and cultural dimensions",
	Long: "Replays event scripts into biological, emotional and cultural memory graphs " +
		"and reports causal chains, statistics and records. State lives only for the run.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if formatFlag != "json" && formatFlag != "text" {
			return fmt.Errorf("invalid format %q (valid: json, text)", formatFlag)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Sense config path (default: $MEMGRAPH_CONFIG or ./senses.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every operation to stderr")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// run is one script replay into a fresh registry.
type run struct {
	ID       string
	Registry *memory.Registry
	Result   *script.Result
}

func replay(cmd *cobra.Command, path string) (*run, error) {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
	logger := newLogger(cmd).With("run_id", id)

	s, err := script.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}

	reg := memory.NewRegistry(memory.WithLogger(logger))
	res, err := script.Apply(reg, s)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	logger.Info("script replayed", "script", path, "steps", res.Steps)

	return &run{ID: id, Registry: reg, Result: res}, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
