package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/scenes"
	"subcast/internal/session"
	"subcast/internal/subtitles"
)

func newLinesCommand(ctx *commandContext) *cobra.Command {
	var (
		filter string
		scene  int
	)

	cmd := &cobra.Command{
		Use:   "lines <session>",
		Short: "List the subtitle lines of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch filter {
			case "all", "annotated", "unannotated":
			default:
				return fmt.Errorf("invalid filter %q (expected all, annotated, or unannotated)", filter)
			}

			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				state := ann.State
				headers := []string{"#", "Timestamp", "Scene", "Character", "Dialogue"}
				aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft}
				if state.HasSecondaryTrack {
					headers = append(headers, "Secondary")
					aligns = append(aligns, alignLeft)
				}

				rows := make([][]string, 0, len(state.Subtitles))
				for position, line := range state.Subtitles {
					sceneID := scenes.IDOf(state.SceneBreaks, position)
					if scene > 0 && sceneID != scene {
						continue
					}
					if filter == "annotated" && line.Character == "" {
						continue
					}
					if filter == "unannotated" && line.Character != "" {
						continue
					}

					character := ""
					if line.Character != "" {
						character = state.CanonicalNameOf(line.Character)
						if line.Prefilled {
							character += " *"
						}
					}
					row := []string{
						strconv.Itoa(position + 1),
						line.Timestamp,
						strconv.Itoa(sceneID),
						character,
						truncateText(subtitles.StripOverrideTags(line.Text), 60),
					}
					if state.HasSecondaryTrack {
						row = append(row, truncateText(line.SecondaryText, 40))
					}
					rows = append(rows, row)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				fmt.Fprintf(out, "%d lines, %d annotated\n", len(state.Subtitles), state.AnnotatedCount())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Show all, annotated, or unannotated lines")
	cmd.Flags().IntVar(&scene, "scene", 0, "Only show lines from the given scene")

	return cmd
}
