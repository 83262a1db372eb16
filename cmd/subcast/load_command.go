package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/characters"
	"subcast/internal/logging"
	"subcast/internal/session"
	"subcast/internal/subtitles"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var (
		secondaryPath string
		styles        []string
		tolerance     int
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "load <subtitle-file>",
		Short: "Parse a subtitle file and start an annotation session",
		Long: "Parse an SRT or ASS file into a new annotation session. Dual-language " +
			"ASS files are split into primary and secondary tracks automatically; a " +
			"separate secondary file can be merged with --secondary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if tolerance <= 0 {
				tolerance = cfg.Alignment.ToleranceMs
			}
			allowed := styles
			if len(allowed) == 0 {
				allowed = cfg.Styles.Allowed
			}

			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read subtitle file: %w", err)
			}
			filename := filepath.Base(path)

			primary, secondary, secondaryName, err := parseTracks(filename, string(content), allowed)
			if err != nil {
				return err
			}
			if len(primary) == 0 {
				return fmt.Errorf("no subtitle lines found in %s", filename)
			}

			if secondaryPath != "" {
				secContent, err := os.ReadFile(secondaryPath)
				if err != nil {
					return fmt.Errorf("read secondary file: %w", err)
				}
				secondaryName = filepath.Base(secondaryPath)
				secondary, err = parseSingleTrack(secondaryName, string(secContent), allowed)
				if err != nil {
					return err
				}
			}

			logger := logging.NewComponentLogger(ctx.ensureLogger(), "load")

			return ctx.withStore(func(store *session.Store) error {
				if !force {
					if _, _, err := store.Load(cmd.Context(), filename); err == nil {
						return fmt.Errorf("session for %q already exists (use --force to replace it)", filename)
					} else if !errors.Is(err, session.ErrNotFound) {
						return err
					}
				}

				state := &annotation.State{
					Filename:  filename,
					Subtitles: primary,
				}

				list, err := store.LoadCharacterList(cmd.Context())
				if err != nil {
					return err
				}
				if list != nil {
					state.Characters = characters.ApplyList(list, state.Subtitles)
				} else {
					state.Characters = characters.Extract(state.Subtitles)
				}
				state.TopCharacters = characters.Top(state.Characters)
				state.Normalize()

				if len(secondary) > 0 {
					state.Subtitles = subtitles.Align(state.Subtitles, secondary, tolerance)
					state.SecondarySubtitles = secondary
					state.SecondaryFilename = secondaryName
					state.HasSecondaryTrack = true
				}

				if err := store.Save(cmd.Context(), state, nil); err != nil {
					return err
				}

				logger.Info("session created",
					logging.String(logging.FieldSession, filename),
					logging.Int("lines", len(state.Subtitles)),
					logging.Int("characters", len(state.Characters)),
					logging.Bool("secondary", state.HasSecondaryTrack),
				)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Loaded %s: %d lines, %d prefilled, %d characters\n",
					filename, len(state.Subtitles), prefilledCount(state.Subtitles), len(state.Characters))
				if state.HasSecondaryTrack {
					fmt.Fprintf(out, "Merged secondary track %s: %d lines\n",
						state.SecondaryFilename, len(state.SecondarySubtitles))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&secondaryPath, "secondary", "", "Secondary subtitle file to align against the primary track")
	cmd.Flags().StringSliceVar(&styles, "styles", nil, "ASS dialogue styles to admit (default: config styles.allowed)")
	cmd.Flags().IntVar(&tolerance, "tolerance", 0, "Alignment tolerance in milliseconds (default: config alignment.tolerance_ms)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing session for this file")

	return cmd
}

// parseTracks parses a subtitle file, splitting dual-language ASS files
// into primary and secondary tracks.
func parseTracks(filename, content string, allowedStyles []string) (primary, secondary []subtitles.Line, secondaryName string, err error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".srt":
		return subtitles.ParseSRT(content), nil, "", nil
	case ".ass":
		if pair, ok := subtitles.DetectDualLanguageStyles(content); ok && len(allowedStyles) == 0 {
			primary = subtitles.ParseASS(content, []string{pair.Primary})
			secondary = subtitles.ParseASS(content, []string{pair.Secondary})
			return primary, secondary, fmt.Sprintf("%s (%s)", filename, pair.Secondary), nil
		}
		return subtitles.ParseASS(content, allowedStyles), nil, "", nil
	default:
		return nil, nil, "", fmt.Errorf("unsupported subtitle format %q (expected .srt or .ass)", filepath.Ext(filename))
	}
}

func parseSingleTrack(filename, content string, allowedStyles []string) ([]subtitles.Line, error) {
	lines, _, _, err := parseTracks(filename, content, allowedStyles)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no subtitle lines found in %s", filename)
	}
	return lines, nil
}

func prefilledCount(lines []subtitles.Line) int {
	count := 0
	for _, line := range lines {
		if line.Prefilled {
			count++
		}
	}
	return count
}
