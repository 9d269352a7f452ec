package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/parser"
)

// ErrInvalidFlag is returned when generate flags are out of range.
var ErrInvalidFlag = errors.New("commands: invalid flag value")

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic valve network",
		Long: "Builds a network of the chosen shape and prints it as valve records. " +
			"Valve IDs run AA, AB, ... so AA is always present.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			shape, _ := flags.GetString("shape")
			n, _ := flags.GetInt("valves")
			rows, _ := flags.GetInt("rows")
			cols, _ := flags.GetInt("cols")
			seed, _ := flags.GetInt64("seed")
			maxRate, _ := flags.GetInt("max-rate")
			flowP, _ := flags.GetFloat64("flow-p")
			density, _ := flags.GetFloat64("density")

			if maxRate < 1 {
				return zerr.With(zerr.With(ErrInvalidFlag, "flag", "max-rate"), "value", maxRate)
			}
			if flowP < 0 || flowP > 1 {
				return zerr.With(zerr.With(ErrInvalidFlag, "flag", "flow-p"), "value", flowP)
			}

			var con builder.Constructor
			switch shape {
			case "cycle":
				con = builder.Cycle(n)
			case "path":
				con = builder.Path(n)
			case "star":
				con = builder.Star(n)
			case "complete":
				con = builder.Complete(n)
			case "grid":
				con = builder.Grid(rows, cols)
			case "random":
				con = builder.RandomSparse(n, density)
			default:
				return zerr.With(zerr.With(ErrInvalidFlag, "flag", "shape"), "value", shape)
			}

			valves, err := builder.BuildValves([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithSparseRate(flowP, 1, maxRate),
			}, con)
			if err != nil {
				return zerr.With(err, "shape", shape)
			}
			c.logger.Debug("network generated", "shape", shape, "valves", len(valves), "seed", seed)

			return parser.Format(cmd.OutOrStdout(), valves)
		},
	}
	cmd.Flags().String("shape", "random", "Network shape: cycle, path, star, complete, grid or random")
	cmd.Flags().IntP("valves", "n", 15, "Number of valves (all shapes but grid)")
	cmd.Flags().Int("rows", 3, "Grid rows")
	cmd.Flags().Int("cols", 3, "Grid columns")
	cmd.Flags().Int64("seed", 1, "Random seed")
	cmd.Flags().Int("max-rate", 25, "Largest flow rate assigned to a valve")
	cmd.Flags().Float64("flow-p", 0.4, "Probability that a valve has a positive rate")
	cmd.Flags().Float64("density", 0.2, "Tunnel probability for the random shape")
	return cmd
}
