// Package cli provides the root command and CLI setup for hillclimb.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `hillclimb reads a height map (one row of a-z per line, a single S start
and a single E end) and prints the fewest steps from S to E, then the fewest
steps from any lowest cell to E. A step may climb at most one letter.

The input path defaults to input.txt and may be given as the first argument.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hillclimb [input]",
		Short:         "Shortest climbing routes across a height map",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}

	configureRootFlags(cmd)
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(inputFlagName, "i", viper.GetString(inputKey), "path of the height map to read")
	bindFlagToConfig(flags.Lookup(inputFlagName), inputKey)

	flags.StringP(formatFlagName, "f", viper.GetString(formatKey), "output format: plain, table, or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatKey)

	flags.IntP(workersFlagName, "p", viper.GetInt(workersKey), "number of parallel searches for the best trailhead")
	bindFlagToConfig(flags.Lookup(workersFlagName), workersKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level and trace every search step")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command, cancelling on interrupt.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hillclimb:", err)
		os.Exit(1)
	}
}
