package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// mutation 执行写操作并打印服务端消息
func mutation(cmd *cobra.Command, call func(ctx context.Context) (string, error)) error {
	msg, err := call(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func newAddListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-list <list>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutation(cmd, func(ctx context.Context) (string, error) {
				return apiClient().AddList(ctx, args[0])
			})
		},
	}
}

func newAddItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-item <list> <item>",
		Short: "Add an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutation(cmd, func(ctx context.Context) (string, error) {
				return apiClient().AddItem(ctx, args[0], args[1])
			})
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <list> <item>",
		Short: "Flip an item between done and pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutation(cmd, func(ctx context.Context) (string, error) {
				return apiClient().ToggleItem(ctx, args[0], args[1])
			})
		},
	}
}

func newRemoveItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-item <list> <item>",
		Short: "Delete an item from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutation(cmd, func(ctx context.Context) (string, error) {
				return apiClient().DeleteItem(ctx, args[0], args[1])
			})
		},
	}
}

func newRemoveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-list <list>",
		Short: "Delete a list and all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutation(cmd, func(ctx context.Context) (string, error) {
				return apiClient().DeleteList(ctx, args[0])
			})
		},
	}
}
