package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var tolerance int

	cmd := &cobra.Command{
		Use:   "align <session> <secondary-file>",
		Short: "Attach and align a secondary subtitle track",
		Long: "Parse a second subtitle file and align its lines against the session's " +
			"primary track by timestamp overlap. Replaces any existing secondary track.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if tolerance <= 0 {
				tolerance = cfg.Alignment.ToleranceMs
			}

			content, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read secondary file: %w", err)
			}
			secondaryName := filepath.Base(args[1])
			secondary, err := parseSingleTrack(secondaryName, string(content), cfg.Styles.Allowed)
			if err != nil {
				return err
			}

			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				ann.AttachSecondary(secondaryName, secondary, tolerance)
				aligned := 0
				for _, line := range ann.State.Subtitles {
					if len(line.SecondaryIndices) > 0 {
						aligned++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Aligned %s: %d of %d lines matched (tolerance %dms)\n",
					secondaryName, aligned, len(ann.State.Subtitles), tolerance)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&tolerance, "tolerance", 0, "Alignment tolerance in milliseconds (default: config alignment.tolerance_ms)")

	return cmd
}
