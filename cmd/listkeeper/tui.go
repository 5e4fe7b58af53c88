package main

import (
	"github.com/spf13/cobra"

	"github.com/listkeeper/backend/internal/tui"
)

var watchChanges bool

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		RunE:  runTUI,
	}
	cmd.Flags().BoolVar(&watchChanges, "watch", true, "refresh automatically when another client changes data")
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(cmd.Context(), apiClient(), tui.Options{Watch: watchChanges})
}
