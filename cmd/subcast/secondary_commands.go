package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var indices string

	cmd := &cobra.Command{
		Use:   "link <session> <line>",
		Short: "Link secondary lines to a primary line",
		Long: "Replace a line's secondary mapping with the given secondary line " +
			"numbers. An empty --indices clears the mapping.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			secondaryIndices, err := parseIndexList(indices)
			if err != nil {
				return err
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.LinkSecondary(position, secondaryIndices); err != nil {
					return err
				}
				if len(secondaryIndices) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Cleared secondary mapping of line %d\n", position+1)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Linked %d secondary lines to line %d\n", len(secondaryIndices), position+1)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&indices, "indices", "", "Comma-separated secondary line numbers")

	return cmd
}

func newShiftCommand(ctx *commandContext) *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "shift <session> <line>",
		Short: "Shift the secondary mapping from a line onward",
		Long: "Move every secondary mapping from the given line onward one line up " +
			"or down. Use this to fix a systematic alignment drift instead of " +
			"relinking lines one by one.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			var dir int
			switch direction {
			case "down":
				dir = 1
			case "up":
				dir = -1
			default:
				return fmt.Errorf("invalid direction %q (expected up or down)", direction)
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.ShiftSecondaryMapping(position, dir); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Shifted secondary mapping %s from line %d\n", direction, position+1)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&direction, "direction", "down", "Shift direction (up or down)")

	return cmd
}

func newTransferCommand(ctx *commandContext) *cobra.Command {
	var keepUnaligned bool

	cmd := &cobra.Command{
		Use:   "transfer <session>",
		Short: "Promote the secondary track to primary dialogue",
		Long: "Replace each line's dialogue with its mapped secondary text, keeping " +
			"timing, assignments, and scene breaks. The session is renamed after the " +
			"secondary file so the original session is untouched. Lines with no " +
			"mapping are blanked unless --keep-unaligned is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.TransferSecondaryToPrimary(keepUnaligned); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Transferred secondary dialogue; session is now %q\n", ann.State.Filename)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&keepUnaligned, "keep-unaligned", false, "Keep original dialogue on lines with no secondary mapping")

	return cmd
}
