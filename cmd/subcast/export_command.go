package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/export"
	"subcast/internal/logging"
	"subcast/internal/session"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		format             string
		output             string
		includeUnannotated bool
		suppressRepeated   bool
	)

	cmd := &cobra.Command{
		Use:   "export <session>",
		Short: "Export a session's annotations",
		Long: "Write the session's annotated dialogue as JSON, CSV, or a plain " +
			"screenplay transcript. The default output path is derived from the " +
			"subtitle filename under the configured export directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmtValue, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := export.Options{
				IncludeUnannotated:    includeUnannotated || cfg.Export.IncludeUnannotated,
				SuppressRepeatedNames: suppressRepeated,
				ByteOrderMark:         cfg.Export.CSVByteOrderMark,
			}

			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				path := output
				if path == "" {
					path = filepath.Join(cfg.Paths.ExportDir, export.OutputName(ann.State.Filename, fmtValue))
				}

				file, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := export.Write(file, ann.State, fmtValue, opts); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}

				logger := logging.NewComponentLogger(ctx.ensureLogger(), "export")
				logger.Info("wrote export",
					logging.String(logging.FieldSession, ann.State.Filename),
					logging.String("format", string(fmtValue)),
					logging.String("path", path),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%d of %d lines annotated)\n",
					path, ann.State.AnnotatedCount(), len(ann.State.Subtitles))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, csv, or txt)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&includeUnannotated, "include-unannotated", false, "Include lines without a character assignment")
	cmd.Flags().BoolVar(&suppressRepeated, "suppress-repeated-names", false, "Omit the speaker name on consecutive lines (txt only)")

	return cmd
}
