package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/report"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the shortest routes (same as running hillclimb without a subcommand)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool(logVerboseKey)
	logger := configureLogger(viper.GetString(logFilenameKey), verbose)

	path := viper.GetString(inputKey)
	if len(args) > 0 {
		path = args[0]
	}

	format, err := report.ParseFormat(viper.GetString(formatKey))
	if err != nil {
		return err
	}

	text, err := readInput(inputFS, path)
	if err != nil {
		logger.Error("Failed to read input", "path", path, "error", err)
		return err
	}

	grid, err := heightmap.Parse(text)
	if err != nil {
		logger.Error("Failed to parse height map", "path", path, "error", err)
		return fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Info("Parsed height map", "path", path, "rows", grid.Rows(), "cols", grid.Cols(),
		"start", grid.Start().String(), "end", grid.End().String())

	engine, err := climb.New(grid,
		climb.WithContext(cmd.Context()),
		climb.WithWorkers(viper.GetInt(workersKey)),
		climb.WithLogger(logger),
		climb.WithTrace(verbose),
	)
	if err != nil {
		return err
	}

	fromStart, err := engine.Search()
	if err != nil {
		return fmt.Errorf("search from start: %w", err)
	}
	best, err := engine.BestPath()
	if err != nil {
		return fmt.Errorf("search best trailhead: %w", err)
	}
	logResult(logger, "from start", fromStart)
	logResult(logger, "best trailhead", best)

	return report.Render(cmd.OutOrStdout(), format, report.Report{
		Input:     path,
		Rows:      grid.Rows(),
		Cols:      grid.Cols(),
		FromStart: fromStart,
		BestPath:  best,
	})
}

func logResult(logger *slog.Logger, route string, steps int) {
	if steps == climb.Unreachable {
		logger.Warn("Goal unreachable", "route", route)
		return
	}
	logger.Info("Route found", "route", route, "steps", steps)
}

// inputFS is the filesystem height maps are read from.
var inputFS = afero.NewOsFs()

// readInput loads the raw height map text from path.
func readInput(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}
