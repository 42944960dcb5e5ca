package cmd

import (
	"fmt"
	"github.com/cottand/dlnf/parser"
	"github.com/spf13/cobra"
	"strings"
)

var CheckCmd = &cobra.Command{
	Use:          "check --tbox file",
	Short:        "Parse a TBox, report its defined symbols and any cyclic definitions",
	RunE:         runCheck,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	checkFlags    *commonFlags
	checkTBoxPath *string
)

func init() {
	checkFlags = addCommonFlags(CheckCmd)
	checkTBoxPath = CheckCmd.Flags().StringP("tbox", "t", "", "path to the TBox file")
	_ = CheckCmd.MarkFlagRequired("tbox")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := checkFlags.load(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	policy, err := cfg.CyclePolicy()
	if err != nil {
		return err
	}
	text, err := readFile(*checkTBoxPath)
	if err != nil {
		return err
	}

	tbox, errs, err := parser.ParseTBox(cmd.Context(), text, parser.Options{Workers: cfg.Parse.Workers, Logger: logger})
	if err != nil {
		return err
	}
	errs = errs.Merge(tbox.ExpandAllDefinitions(policy))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "definitions: %d\ninclusions: %d\n", len(tbox.Definitions()), len(tbox.Inclusions()))
	_, _ = fmt.Fprintln(out, "defined symbols:")
	for _, key := range tbox.DefinedKeys() {
		_, _ = fmt.Fprintf(out, "  - %s\n", key)
	}

	if errs.HasError() {
		sb := &strings.Builder{}
		writeErrors(sb, *checkTBoxPath, errs)
		return fmt.Errorf("TBox has %d problem(s):%s", len(errs.Errors()), sb.String())
	}
	_, _ = fmt.Fprintln(out, "ok")
	return nil
}

