package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <session>",
		Short: "Undo the last change to a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if !ann.Undo() {
					return fmt.Errorf("nothing to undo")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Undone (%d left)\n", ann.History.UndoDepth())
				return nil
			})
		},
	}
}

func newRedoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "redo <session>",
		Short: "Redo the last undone change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if !ann.Redo() {
					return fmt.Errorf("nothing to redo")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Redone (%d left)\n", ann.History.RedoDepth())
				return nil
			})
		},
	}
}
