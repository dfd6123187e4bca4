package cmd

import (
	"errors"

	"social-sentiment/config"
	"social-sentiment/pkg/db"
	"social-sentiment/pkg/report"
	"social-sentiment/pkg/scorer"
	"social-sentiment/pkg/service"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type analyzeOptions struct {
	configFilePath string
	inputPath      string
	resultsPath    string
	chartPath      string
	workbookPath   string
	duckDBPath     string
}

func NewAnalyzeCommand() *cobra.Command {
	o := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "分析文本文件中每条内容的情感并输出分布",
		Long:  "逐行读取输入文件，使用 VADER 打分并归入七档情感标签，依次输出到控制台、分布图、结果文件（以及可选的 xlsx 报表和 DuckDB）",
		Args:  cobra.NoArgs,
		RunE:  o.run,
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *analyzeOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	flags.StringVarP(&o.inputPath, "input", "i", "", "输入文本文件路径，覆盖配置")
	flags.StringVarP(&o.resultsPath, "output", "o", "", "结果文件路径，覆盖配置")
	flags.StringVar(&o.chartPath, "chart", "", "分布图路径 (.png/.svg/.pdf/.html 等)，覆盖配置")
	flags.StringVar(&o.workbookPath, "workbook", "", "xlsx 报表路径，覆盖配置")
	flags.StringVar(&o.duckDBPath, "duckdb", "", "DuckDB 数据库路径，设置后记录每次运行结果")
}

// run 根命令与 analyze 子命令共用的分析流程
func (o *analyzeOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(o.configFilePath, cmd.Flags().Changed("config"))
	if err != nil {
		zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
		return err
	}
	o.applyFlags(cmd, cfg)
	if errs := cfg.Validate(); len(errs) > 0 {
		err := errors.Join(errs...)
		zap.S().Errorf("本地配置文件验证错误:%s", err)
		return err
	}

	ctx := cmd.Context()

	s, err := scorer.New(cfg.ScorerConfig)
	if err != nil {
		zap.S().Errorf("初始化打分器失败:%s", err.Error())
		return err
	}

	out := cmd.OutOrStdout()
	reporters := []report.Reporter{report.NewConsoleReporter(out)}
	if cfg.OutputConfig.ChartPath != "" {
		reporters = append(reporters, report.NewChartReporter(
			cfg.OutputConfig.ChartPath, cfg.OutputConfig.ChartWidth, cfg.OutputConfig.ChartHeight))
	}
	reporters = append(reporters, report.NewFileReporter(cfg.OutputConfig.ResultsPath, out))
	if cfg.OutputConfig.WorkbookPath != "" {
		reporters = append(reporters, report.NewWorkbookReporter(cfg.OutputConfig.WorkbookPath))
	}
	if cfg.DuckDBConfig.Enabled() {
		// 初始化 DuckDB
		if err := db.InitDuckDB(ctx, cfg.DuckDBConfig); err != nil {
			zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
			return err
		}
		defer db.CloseDuckDB()
		reporters = append(reporters, report.NewDuckDBReporter(db.GetDuckDB(), cfg.DuckDBConfig.TableName()))
	}

	app := service.NewSentimentApp(service.NewSocialMediaAnalyzer(s), reporters...)
	runReport, err := app.Run(ctx, cfg.InputConfig.Path)
	if err != nil {
		zap.S().Errorf("分析失败:%s", err.Error())
		return err
	}
	if err := runReport.Err(); err != nil {
		zap.S().Warnf("部分输出失败 (run_id=%s): 成功 %v", runReport.RunID, runReport.Succeeded)
		return err
	}
	return nil
}

// applyFlags 命令行参数优先于配置文件
func (o *analyzeOptions) applyFlags(cmd *cobra.Command, cfg *config.GlobalConfig) {
	flags := cmd.Flags()
	if cfg.InputConfig == nil {
		cfg.InputConfig = config.NewDefaultInputConfig()
	}
	if cfg.OutputConfig == nil {
		cfg.OutputConfig = config.NewDefaultOutputConfig()
	}
	if flags.Changed("input") {
		cfg.InputConfig.Path = o.inputPath
	}
	if flags.Changed("output") {
		cfg.OutputConfig.ResultsPath = o.resultsPath
	}
	if flags.Changed("chart") {
		cfg.OutputConfig.ChartPath = o.chartPath
	}
	if flags.Changed("workbook") {
		cfg.OutputConfig.WorkbookPath = o.workbookPath
	}
	if flags.Changed("duckdb") {
		if cfg.DuckDBConfig == nil {
			cfg.DuckDBConfig = config.NewDefaultDuckDBConfig()
		}
		cfg.DuckDBConfig.DBPath = o.duckDBPath
	}
}
