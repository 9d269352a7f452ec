package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/volcano"
	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/metrics"
	"github.com/katalvlaran/volcano/search"
)

type solveOutput struct {
	Single     int   `json:"single"`
	Pair       int   `json:"pair"`
	Partitions int   `json:"partitions"`
	ElapsedMS  int64 `json:"elapsed_ms"`
}

func (c *CLI) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a valve network read from a file or stdin",
		Long: "Reads valve records and prints the best single-actor release " +
			"followed by the best two-actor release, one per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			res, err := c.app.SolveReader(cmd.Context(), in, sc, volcano.WithLogger(c.logger))
			if err != nil {
				return err
			}

			if path, _ := cmd.Flags().GetString("metrics-file"); path != "" {
				if err := metrics.WriteTextfile(path); err != nil {
					return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(solveOutput{
					Single:     res.Single,
					Pair:       res.Pair,
					Partitions: res.Partitions,
					ElapsedMS:  res.Elapsed.Milliseconds(),
				})
			}
			_, err = fmt.Fprintf(out, "%d\n%d\n", res.Single, res.Pair)
			return err
		},
	}
	cmd.Flags().StringP("config", "c", "", "Scenario YAML file; flags override its values")
	cmd.Flags().StringP("start", "s", config.DefaultStart, "Valve both actors start at")
	cmd.Flags().IntP("minutes", "m", config.DefaultPrimaryMinutes, "Minutes available to a single actor")
	cmd.Flags().Int("pair-minutes", config.DefaultSecondaryMinutes, "Minutes available to each of two actors")
	cmd.Flags().IntP("workers", "w", 0, "Concurrent partition evaluations (default GOMAXPROCS)")
	cmd.Flags().StringP("distance", "d", "floyd-warshall", "Distance builder: floyd-warshall, fixpoint or bfs")
	cmd.Flags().Bool("no-bound", false, "Disable upper-bound pruning")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file after solving")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

// scenarioFromFlags loads --config (or the defaults) and applies every flag
// the user set explicitly on top of it.
func scenarioFromFlags(cmd *cobra.Command) (config.Scenario, error) {
	flags := cmd.Flags()

	sc := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if sc, err = config.Load(path); err != nil {
			return config.Scenario{}, err
		}
	}

	if flags.Changed("start") {
		sc.Start, _ = flags.GetString("start")
	}
	if flags.Changed("minutes") {
		sc.PrimaryMinutes, _ = flags.GetInt("minutes")
	}
	if flags.Changed("pair-minutes") {
		sc.SecondaryMinutes, _ = flags.GetInt("pair-minutes")
	}
	if flags.Changed("workers") {
		sc.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("distance") {
		sc.Distance, _ = flags.GetString("distance")
	}
	if noBound, _ := flags.GetBool("no-bound"); noBound {
		sc.Bound = search.NoBound.String()
	}

	return sc, sc.Validate()
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	// #nosec G304 -- path is supplied by the operator
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to open input"), "path", args[0])
	}
	return f, func() { _ = f.Close() }, nil
}
