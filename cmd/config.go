package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yqhp/minbench/internal/config"
)

// configCmd 打印合并默认值、配置文件和环境变量之后的有效配置
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "显示有效配置",
	Long:  `按 默认值 < 配置文件 < 环境变量 的优先级合并配置，校验后以 YAML 输出。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewLoader().WithConfigPath(cfgFile).Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		data, err := cfg.Serialize()
		if err != nil {
			return fmt.Errorf("序列化配置失败: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
