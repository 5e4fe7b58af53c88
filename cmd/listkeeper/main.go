// Package main listkeeper 命令行客户端
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/listkeeper/backend/internal/client"
)

// EnvServer 覆盖默认 API 地址的环境变量
const EnvServer = "LISTKEEPER_SERVER"

var (
	// serverURL 由 --server 设置
	serverURL string
	// configFile 由 --config 设置，仅 migrate 使用
	configFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "listkeeper",
		Short: "listkeeper manages to-do lists over the listkeeper API",
		Long: `listkeeper talks to a running listkeeper server.

Without a subcommand it opens the terminal UI.

Example:
  listkeeper
  listkeeper show
  listkeeper add-list Groceries
  listkeeper add-item Groceries Milk
  listkeeper --server http://10.0.0.5:3360 export --format yaml`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	defaultServer := os.Getenv(EnvServer)
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "listkeeper API base URL (env "+EnvServer+")")
	root.PersistentFlags().StringVar(&configFile, "config", "", "server config file, used by migrate (default: <data dir>/config.yaml)")

	root.AddCommand(
		newTUICmd(),
		newShowCmd(),
		newExportCmd(),
		newAddListCmd(),
		newAddItemCmd(),
		newToggleCmd(),
		newRemoveItemCmd(),
		newRemoveListCmd(),
		newMigrateCmd(),
	)
	return root
}

func apiClient() *client.Client {
	return client.New(serverURL)
}
