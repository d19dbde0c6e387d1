package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/minbench/internal/config"
	"yqhp/minbench/internal/harness"
	"yqhp/minbench/internal/reporter"
	"yqhp/minbench/pkg/logger"
	"yqhp/minbench/pkg/types"
)

var (
	// run 命令的 flags
	runSize     int
	runChunk    int
	runTrials   int
	runSeed     int64
	runMaxValue int
	runCursor   string
	runOutJSON  string
	runNoHeader bool
)

// runCmd 是 run 子命令
var runCmd = &cobra.Command{
	Use:   "run <method> <threads> <migration>",
	Short: "运行一次基准测试",
	Long: `使用指定的分配策略和线程数运行基准测试，输出平均耗时。

method:    0 (cyclic), 1 (block-cyclic), 2 (farming)，也可使用名称
threads:   1 到 benchmark.max_workers（默认 1024）
migration: 原样写入结果的整数标签，按 atoi 规则解析，非数字视为 0`,
	Example: `  # 8 个线程的 farming
  minbench run 2 8 0

  # 缩小数据规模并输出 JSON 详情
  minbench run block-cyclic 4 1 --size 1000000 --trials 5 --out-json result.json

  # 使用原子游标
  minbench run farming 16 0 --cursor atomic`,
	Args: cobra.ExactArgs(3),
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runSize, "size", 0, "元素个数 (覆盖 benchmark.workload_size)")
	runCmd.Flags().IntVar(&runChunk, "chunk", 0, "块大小 (覆盖 benchmark.chunk_size)")
	runCmd.Flags().IntVarP(&runTrials, "trials", "n", 0, "重复次数 (覆盖 benchmark.trials)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "随机数种子 (覆盖 benchmark.seed)")
	runCmd.Flags().IntVar(&runMaxValue, "max-value", 0, "随机值上界 (覆盖 benchmark.max_value)")
	runCmd.Flags().StringVar(&runCursor, "cursor", "", "farming 游标实现: mutex, atomic")
	runCmd.Flags().StringVar(&runOutJSON, "out-json", "", "输出 JSON 结果到文件")
	runCmd.Flags().BoolVar(&runNoHeader, "no-header", false, "不输出 CSV 表头")
}

// runParams 是三个位置参数
type runParams struct {
	strategy  types.Strategy
	workers   int
	migration int
}

func parseRunArgs(args []string) (runParams, error) {
	var p runParams

	strategy, err := types.ParseStrategy(args[0])
	if err != nil {
		return p, fmt.Errorf("无效的 method: %w", err)
	}
	workers, err := strconv.Atoi(args[1])
	if err != nil {
		return p, fmt.Errorf("无效的 threads %q: %w", args[1], err)
	}

	p.strategy, p.workers, p.migration = strategy, workers, parseMigration(args[2])
	return p, nil
}

// parseMigration 按 C 语言 atoi 的方式解析 migration 标签：
// 取开头的可选符号和数字，无法解析的部分被忽略，没有数字时为 0
func parseMigration(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// flagOverrides 收集显式设置的 flags，以点路径形式覆盖配置
func flagOverrides() map[string]string {
	overrides := make(map[string]string)
	if runSize > 0 {
		overrides["benchmark.workload_size"] = strconv.Itoa(runSize)
	}
	if runChunk > 0 {
		overrides["benchmark.chunk_size"] = strconv.Itoa(runChunk)
	}
	if runTrials > 0 {
		overrides["benchmark.trials"] = strconv.Itoa(runTrials)
	}
	if runSeed != 0 {
		overrides["benchmark.seed"] = strconv.FormatInt(runSeed, 10)
	}
	if runMaxValue > 0 {
		overrides["benchmark.max_value"] = strconv.Itoa(runMaxValue)
	}
	if runCursor != "" {
		overrides["benchmark.cursor"] = runCursor
	}
	return overrides
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	params, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().WithConfigPath(cfgFile).WithCmdArgs(flagOverrides()).Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// 在分配任何数组之前校验线程数和策略
	if err := cfg.ValidateRun(params.strategy, params.workers); err != nil {
		return err
	}

	// 参数合法后不再打印 usage
	cmd.SilenceUsage = true

	if quiet {
		cfg.Logging.Level = "error"
	}
	logger.Init(cfg.LoggerConfig())
	if debug {
		logger.EnableDebug()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coordinator, err := harness.New(harness.FromConfig(cfg, params.strategy, params.workers, params.migration))
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	result, err := coordinator.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("benchmark interrupted", zap.Error(err))
		}
		return fmt.Errorf("执行失败: %w", err)
	}

	manager := reporter.NewManager(reporter.NewCSVReporter(cmd.OutOrStdout(), !runNoHeader))
	if runOutJSON != "" {
		manager.Add(reporter.NewJSONReporter(&reporter.JSONConfig{FilePath: runOutJSON, Pretty: true}))
	}
	defer manager.Close()

	if err := manager.Report(ctx, result); err != nil {
		return err
	}

	logger.Info("report written", zap.String("run_id", result.RunID), zap.String("json", runOutJSON))
	return nil
}
