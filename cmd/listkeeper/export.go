package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/listkeeper/backend/internal/domain/todo"
)

var exportFormat string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export grouped lists as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := apiClient().Grouped(cmd.Context())
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), views, exportFormat)
		},
	}
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func writeExport(w io.Writer, views []todo.ListView, format string) error {
	if views == nil {
		views = []todo.ListView{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
	}
}
