package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/characters"
	"subcast/internal/scenes"
	"subcast/internal/session"
)

// formatSceneIDs renders the scene ids a character appears in; empty until
// the session defines scene breaks.
func formatSceneIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func newCharacterCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Manage the character registry",
	}
	cmd.AddCommand(newCharacterListCommand(ctx))
	cmd.AddCommand(newCharacterAddCommand(ctx))
	cmd.AddCommand(newCharacterMergeCommand(ctx))
	cmd.AddCommand(newCharacterRenameCommand(ctx))
	cmd.AddCommand(newCharacterUnmergeCommand(ctx))
	cmd.AddCommand(newCharacterMoveCommand(ctx))
	cmd.AddCommand(newCharacterDeleteCommand(ctx))
	cmd.AddCommand(newCharacterSortCommand(ctx))
	cmd.AddCommand(newCharacterSaveListCommand(ctx))
	cmd.AddCommand(newCharacterLoadListCommand(ctx))
	return cmd
}

func newCharacterListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <session>",
		Short: "List the session's characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				state := ann.State
				rows := make([][]string, 0, len(state.Characters))
				for i, c := range state.Characters {
					hotkey := ""
					if i < len(state.TopCharacters) {
						hotkey = strconv.Itoa(i + 1)
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						c.CanonicalName,
						strings.Join(c.Aliases, ", "),
						strconv.Itoa(c.Count),
						formatSceneIDs(scenes.WithCharacter(state.SceneBreaks, state.Subtitles, c.Name)),
						hotkey,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Name", "Aliases", "Lines", "Scenes", "Hotkey"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newCharacterAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <session> <name>",
		Short: "Add a character to the registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.AddCharacter(args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", args[1])
				return nil
			})
		},
	}
}

func newCharacterMergeCommand(ctx *commandContext) *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "merge <session> <name>...",
		Short: "Merge characters into one canonical name",
		Long: "Merge two or more characters into a single entry. The merged names " +
			"become aliases and every line assigned to them is reassigned. The " +
			"canonical name defaults to the first name given.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args[1:]
			canonical := into
			if canonical == "" {
				canonical = names[0]
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.MergeCharacters(names, canonical); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %s into %s\n", strings.Join(names, ", "), canonical)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&into, "into", "", "Canonical name for the merged character")

	return cmd
}

func newCharacterRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <session> <old-name> <new-name>",
		Short: "Rename a character",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.RenameCharacter(args[1], args[2]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[1], args[2])
				return nil
			})
		},
	}
}

func newCharacterUnmergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unmerge <session> <name> <alias>",
		Short: "Split an alias back out into its own character",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.UnmergeAlias(args[1], args[2]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Split %s out of %s\n", args[2], args[1])
				return nil
			})
		},
	}
}

func newCharacterMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <session> <position> <up|down>",
		Short: "Move a character within the registry order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseLineNumber(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			var direction int
			switch args[2] {
			case "up":
				direction = -1
			case "down":
				direction = 1
			default:
				return fmt.Errorf("invalid direction %q (expected up or down)", args[2])
			}
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.MoveCharacter(position, direction); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved character %s\n", args[2])
				return nil
			})
		},
	}
}

func newCharacterDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session> <name>",
		Short: "Delete a character from the registry",
		Long: "Remove a character from the registry. Lines assigned to it keep " +
			"their assignment and resolve to the raw name until reassigned.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				if err := ann.DeleteCharacter(args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[1])
				return nil
			})
		},
	}
}

func newCharacterSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <session>",
		Short: "Sort the registry by line count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(_ *session.Store, ann *annotation.Store) error {
				ann.SortCharacters()
				fmt.Fprintln(cmd.OutOrStdout(), "Sorted characters by frequency")
				return nil
			})
		},
	}
}

func newCharacterSaveListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save-list <session>",
		Short: "Save the session's characters as the global list",
		Long: "Store the session's character names and aliases as the global list. " +
			"New sessions apply the list automatically so recurring characters keep " +
			"their merges across episodes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd.Context(), args[0], func(store *session.Store, ann *annotation.Store) error {
				list := characters.ToList(ann.State.Characters)
				if err := store.SaveCharacterList(cmd.Context(), list); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved global list with %d characters\n", len(list))
				return nil
			})
		},
	}
}

func newCharacterLoadListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load-list <session>",
		Short: "Import the global character list into a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.mutateSession(cmd.Context(), args[0], func(store *session.Store, ann *annotation.Store) error {
				list, err := store.LoadCharacterList(cmd.Context())
				if err != nil {
					return err
				}
				if list == nil {
					return fmt.Errorf("no global character list saved")
				}
				ann.ImportCharacterList(list)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d characters from the global list\n", len(list))
				return nil
			})
		},
	}
}
