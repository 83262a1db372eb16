package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/project"
	"subcast/internal/session"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Save and restore portable project files",
	}
	cmd.AddCommand(newProjectExportCommand(ctx))
	cmd.AddCommand(newProjectImportCommand(ctx))
	return cmd
}

func newProjectExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <session>",
		Short: "Write a session to a portable project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				path := output
				if path == "" {
					path = filepath.Join(cfg.Paths.ExportDir, project.OutputName(ann.State.Filename))
				}
				file, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create project file: %w", err)
				}
				if err := project.Write(file, ann.State); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close project file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote project file %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")

	return cmd
}

func newProjectImportCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <project-file>",
		Short: "Restore a session from a project file",
		Long: "Load a project file and save it as a session. History is not part " +
			"of the project format, so the restored session starts with empty " +
			"undo and redo stacks.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open project file: %w", err)
			}
			defer file.Close()

			state, err := project.Read(file)
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *session.Store) error {
				if !force {
					if _, _, err := store.Load(cmd.Context(), state.Filename); err == nil {
						return fmt.Errorf("session for %q already exists (use --force to replace it)", state.Filename)
					}
				}
				if err := store.Save(cmd.Context(), state, nil); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported session %q: %d lines, %d annotated\n",
					state.Filename, len(state.Subtitles), state.AnnotatedCount())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing session with the same filename")

	return cmd
}
