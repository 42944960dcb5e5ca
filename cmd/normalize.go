package cmd

import (
	"context"
	"fmt"
	"github.com/cottand/dlnf/dlerr"
	"github.com/cottand/dlnf/internal/log"
	"github.com/cottand/dlnf/pipeline"
	"github.com/spf13/cobra"
	"io"
	"strings"
)

var NormalizeCmd = &cobra.Command{
	Use:          "normalize --tbox file [--abox file]",
	Short:        "Expand definitions, normalize the ABox and aggregate the GCIs of a knowledge base",
	RunE:         runNormalize,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	normalizeFlags *commonFlags
	tboxPath       *string
	aboxPath       *string
	watch          *bool
)

func init() {
	normalizeFlags = addCommonFlags(NormalizeCmd)
	tboxPath = NormalizeCmd.Flags().StringP("tbox", "t", "", "path to the TBox file")
	aboxPath = NormalizeCmd.Flags().StringP("abox", "a", "", "path to the ABox file")
	watch = NormalizeCmd.Flags().Bool("watch", false, "normalize again whenever the input files change")
	_ = NormalizeCmd.MarkFlagRequired("tbox")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := normalizeFlags.load(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	settings, err := pipelineSettings(cfg, logger)
	if err != nil {
		return err
	}

	if *watch {
		return watchFiles(cmd.Context(), logger, []string{*tboxPath, *aboxPath}, func() {
			if err := normalizeOnce(cmd.Context(), cmd.OutOrStdout(), settings); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
	}
	return normalizeOnce(cmd.Context(), cmd.OutOrStdout(), settings)
}

func normalizeOnce(ctx context.Context, out io.Writer, settings pipeline.Settings) error {
	logger := settings.Logger.With("section", log.SectionCLI)
	tboxText, err := readFile(*tboxPath)
	if err != nil {
		return err
	}
	aboxText, err := readFile(*aboxPath)
	if err != nil {
		return err
	}

	res, err := pipeline.Normalize(ctx, pipeline.Sources{TBox: tboxText, ABox: aboxText}, settings)
	if err != nil {
		return fmt.Errorf("could not normalize (this is a bug and not an input error): %w", err)
	}
	logger.Debug("normalized", "complete", res.Complete)

	printResult(out, res)

	if res.HasError() {
		sb := &strings.Builder{}
		writeErrors(sb, *tboxPath, res.TBoxErrors)
		writeErrors(sb, *aboxPath, res.ABoxErrors)
		return fmt.Errorf("errors found during normalization:%s", sb.String())
	}
	return nil
}

func printResult(out io.Writer, res *pipeline.Result) {
	_, _ = fmt.Fprintln(out, res.ABox.String())
	switch {
	case !res.Complete:
		_, _ = fmt.Fprintln(out, "GCI: not computed")
	case res.GCI == nil:
		_, _ = fmt.Fprintln(out, "GCI: none")
	default:
		_, _ = fmt.Fprintf(out, "GCI: %s\n", res.GCI)
	}
}

func writeErrors(sb *strings.Builder, source string, errs *dlerr.Errors) {
	errs.SortByLine()
	for _, e := range errs.Errors() {
		sb.WriteString("\n")
		sb.WriteString(source)
		sb.WriteString(": ")
		sb.WriteString(dlerr.FormatWithCode(e))
	}
}
