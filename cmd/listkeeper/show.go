package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/listkeeper/backend/internal/domain/todo"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [list]",
		Short: "Print lists and their items",
		Long: `Show fetches /get_data and prints every list grouped with its items.

With a list name only that list is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := apiClient().Grouped(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				view, ok := todo.Find(views, args[0])
				if !ok {
					return fmt.Errorf("list %q not found", args[0])
				}
				views = []todo.ListView{view}
			}

			renderLists(cmd.OutOrStdout(), views)
			return nil
		},
	}
}

// renderLists 纯文本输出，[x] 表示已完成
func renderLists(w io.Writer, views []todo.ListView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No lists.")
		return
	}

	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(w)
		}
		done, pending := v.Stats()
		fmt.Fprintf(w, "%s (%d done, %d pending)\n", v.Name, done, pending)
		for _, item := range v.Items {
			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			fmt.Fprintf(w, "  %s %s\n", box, item.Name)
		}
	}
}
