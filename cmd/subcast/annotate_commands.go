package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newAssignCommand(ctx *commandContext) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "assign <session> <line> [character]",
		Short: "Assign a character to a subtitle line",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 3 {
				name = args[2]
			}
			if !clear && name == "" {
				return fmt.Errorf("character name required (or pass --clear)")
			}
			if clear {
				name = ""
			}

			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.AssignCharacter(position, name); err != nil {
					return err
				}
				if name == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Cleared line %d\n", position+1)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Line %d: %s\n", position+1, ann.State.CanonicalNameOf(name))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the line's character assignment")

	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var secondary bool

	cmd := &cobra.Command{
		Use:   "edit <session> <line> <text>",
		Short: "Edit the dialogue text of a line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}

			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if secondary {
					if err := ann.EditSecondaryText(position, args[2]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Updated secondary text of line %d\n", position+1)
					return nil
				}
				changed, err := ann.EditText(position, args[2])
				if err != nil {
					return err
				}
				if !changed {
					fmt.Fprintf(cmd.OutOrStdout(), "Line %d unchanged\n", position+1)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated line %d\n", position+1)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&secondary, "secondary", false, "Edit the line's secondary text instead")

	return cmd
}

func newDeleteLineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-line <session> <line>",
		Short: "Delete a subtitle line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.DeleteLine(position); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted line %d (%d lines remain)\n", position+1, len(ann.State.Subtitles))
				return nil
			})
		},
	}
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear <session>",
		Short: "Clear all manual character assignments",
		Long: "Remove every manually assigned character from the session. Prefilled " +
			"assignments from ASS speaker names are kept. This cannot be undone.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("clearing annotations cannot be undone; pass --yes to confirm")
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				ann.ClearAnnotations()
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared annotations (%d prefilled kept)\n", prefilledCount(ann.State.Subtitles))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the clear")

	return cmd
}
