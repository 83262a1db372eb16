package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"subcast/internal/session"
)

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage saved annotation sessions",
	}
	cmd.AddCommand(newSessionsListCommand(ctx))
	cmd.AddCommand(newSessionsDeleteCommand(ctx))
	return cmd
}

func newSessionsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *session.Store) error {
				summaries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved sessions")
					return nil
				}

				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					progress := ""
					if s.LineCount > 0 {
						progress = fmt.Sprintf("%d%%", s.AnnotatedCount*100/s.LineCount)
					}
					rows = append(rows, []string{
						s.Filename,
						strconv.Itoa(s.LineCount),
						strconv.Itoa(s.AnnotatedCount),
						progress,
						s.UpdatedAt.Local().Format(time.DateTime),
					})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Session", "Lines", "Annotated", "Progress", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newSessionsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session>",
		Short: "Delete a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *session.Store) error {
				deleted, err := store.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("no session named %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %q\n", args[0])
				return nil
			})
		},
	}
}
