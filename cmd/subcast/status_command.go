package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/session"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <session>",
		Short: "Show annotation progress for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				state := ann.State
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				annotated := state.AnnotatedCount()
				percent := 0
				if len(state.Subtitles) > 0 {
					percent = annotated * 100 / len(state.Subtitles)
				}
				progressKind := statusWarn
				switch {
				case percent == 100:
					progressKind = statusOK
				case percent == 0:
					progressKind = statusInfo
				}

				for _, line := range renderSectionHeader(state.Filename, colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, renderStatusLine("Lines", progressKind,
					fmt.Sprintf("%d total, %d annotated (%d%%)", len(state.Subtitles), annotated, percent), colorize))
				fmt.Fprintln(out, renderStatusLine("Prefilled", statusInfo,
					strconv.Itoa(prefilledCount(state.Subtitles)), colorize))
				fmt.Fprintln(out, renderStatusLine("Scenes", statusInfo,
					strconv.Itoa(len(state.SceneBreaks)+1), colorize))
				fmt.Fprintln(out, renderStatusLine("Characters", statusInfo,
					strconv.Itoa(len(state.Characters)), colorize))
				if state.HasSecondaryTrack {
					mapped := 0
					for _, line := range state.Subtitles {
						if len(line.SecondaryIndices) > 0 {
							mapped++
						}
					}
					kind := statusOK
					if mapped < len(state.Subtitles) {
						kind = statusWarn
					}
					fmt.Fprintln(out, renderStatusLine("Secondary", kind,
						fmt.Sprintf("%s (%d lines, %d mapped)", state.SecondaryFilename, len(state.SecondarySubtitles), mapped), colorize))
				}
				fmt.Fprintln(out, renderStatusLine("History", statusInfo,
					fmt.Sprintf("%d undo, %d redo", ann.History.UndoDepth(), ann.History.RedoDepth()), colorize))
				if state.LastSaved != "" {
					fmt.Fprintln(out, renderStatusLine("Saved", statusInfo, state.LastSaved, colorize))
				}

				if len(state.Characters) > 0 {
					rows := make([][]string, 0, len(state.Characters))
					for _, c := range state.Characters {
						share := ""
						if annotated > 0 {
							share = fmt.Sprintf("%d%%", c.Count*100/annotated)
						}
						rows = append(rows, []string{c.CanonicalName, strconv.Itoa(c.Count), share})
					}
					fmt.Fprintln(out)
					fmt.Fprintln(out, renderTable(
						[]string{"Character", "Lines", "Share"},
						rows,
						[]columnAlignment{alignLeft, alignRight, alignRight},
					))
				}
				return nil
			})
		},
	}
}
