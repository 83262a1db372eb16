package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newSceneCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage scene breaks",
	}
	cmd.AddCommand(newSceneAddCommand(ctx))
	cmd.AddCommand(newSceneRemoveCommand(ctx))
	cmd.AddCommand(newSceneListCommand(ctx))
	return cmd
}

func newSceneAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <session> <line>",
		Short: "Insert a scene break after a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.InsertSceneBreak(position); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Scene break after line %d (%d scenes)\n",
					position+1, len(ann.State.SceneBreaks)+1)
				return nil
			})
		},
	}
}

func newSceneRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session> <line>",
		Short: "Remove the scene break after a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return err
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.DeleteSceneBreak(position); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed scene break after line %d\n", position+1)
				return nil
			})
		},
	}
}

func newSceneListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <session>",
		Short: "List scenes and their line ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				state := ann.State

				// A break at position p closes its scene after line p, so
				// each scene runs through break+1 in 1-based terms.
				bounds := make([]int, 0, len(state.SceneBreaks)+1)
				for _, b := range state.SceneBreaks {
					bounds = append(bounds, b+1)
				}
				bounds = append(bounds, len(state.Subtitles))

				rows := make([][]string, 0, len(bounds))
				start := 0
				for i, end := range bounds {
					annotated := 0
					for _, line := range state.Subtitles[start:end] {
						if line.Character != "" {
							annotated++
						}
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						fmt.Sprintf("%d-%d", start+1, end),
						strconv.Itoa(end - start),
						strconv.Itoa(annotated),
					})
					start = end
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Scene", "Lines", "Count", "Annotated"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}
