// Package cmd 提供 minbench CLI 的命令实现
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	// Version 是当前版本号
	Version = "0.1.0"
)

var (
	// 全局配置
	cfgFile string
	debug   bool
	quiet   bool
)

// rootCmd 是根命令
var rootCmd = &cobra.Command{
	Use:   "minbench",
	Short: "并行求数组最小值的分配策略基准测试",
	Long: `minbench 对两个数组逐元素求最小值，比较三种任务分配策略的平均耗时：
  0: cyclic        按步长循环分配下标
  1: block-cyclic  按固定大小的块循环分配
  2: farming       工作线程从共享游标动态领取块`,
	Version:       Version,
	SilenceErrors: true,
}

// Execute 执行根命令，出错时以状态码 1 退出
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "静默模式，仅输出错误日志")

	// 禁用默认的 completion 命令
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("minbench version {{.Version}}\n")
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}
