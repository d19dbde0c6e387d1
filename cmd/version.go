package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd 打印版本信息
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "minbench version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
