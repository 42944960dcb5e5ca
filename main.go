package main

import (
	"context"
	"github.com/cottand/dlnf/cmd"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "dlnf [subcommand]",
	Short:        "dlnf normalizes ALC knowledge bases for a tableau reasoner",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.NormalizeCmd)
	rootCmd.AddCommand(cmd.NNFCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
