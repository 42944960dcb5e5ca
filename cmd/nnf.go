package cmd

import (
	"fmt"
	"github.com/cottand/dlnf/concept"
	"github.com/cottand/dlnf/parser"
	"github.com/spf13/cobra"
)

var NNFCmd = &cobra.Command{
	Use:          "nnf concept...",
	Short:        "Print the negation normal form of each concept",
	Example:      `  dlnf nnf "not (and (A (some r B)))"`,
	RunE:         runNNF,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runNNF(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, arg := range args {
		c, err := parser.ParseConcept(arg)
		if err == nil {
			c, err = concept.NNF(c)
		}
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			continue
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), concept.KeyOf(c))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d concepts could not be converted", failed, len(args))
	}
	return nil
}
