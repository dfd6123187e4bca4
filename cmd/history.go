package cmd

import (
	"errors"
	"fmt"
	"time"

	"social-sentiment/config"
	"social-sentiment/pkg/db"
	"social-sentiment/pkg/model"
	"social-sentiment/pkg/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewHistoryCommand() *cobra.Command {
	var configFilePath string
	var duckDBPath string
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "查看 DuckDB 中保存的历史运行",
		Long:  "列出 analyze 写入 DuckDB 的历史运行；指定 --run 时输出该次运行各情感标签的数量",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configFilePath, cmd.Flags().Changed("config"))
			if err != nil {
				zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
				return err
			}
			if cmd.Flags().Changed("duckdb") {
				if cfg.DuckDBConfig == nil {
					cfg.DuckDBConfig = config.NewDefaultDuckDBConfig()
				}
				cfg.DuckDBConfig.DBPath = duckDBPath
			}
			if !cfg.DuckDBConfig.Enabled() {
				return model.NewKindError(model.ErrConfig, nil, "未配置 DuckDB 数据库路径")
			}
			if errs := cfg.DuckDBConfig.Validate(); len(errs) > 0 {
				err := errors.Join(errs...)
				zap.S().Errorf("DuckDB 配置验证错误:%s", err)
				return model.NewKindError(model.ErrConfig, err, "DuckDB 配置不合法")
			}

			ctx := cmd.Context()

			// 初始化 DuckDB
			if err := db.InitDuckDB(ctx, cfg.DuckDBConfig); err != nil {
				zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
				return err
			}
			defer db.CloseDuckDB()

			historyService := service.NewHistoryService(db.GetDuckDB(), cfg.DuckDBConfig.TableName())
			out := cmd.OutOrStdout()

			if runID != "" {
				counts, err := historyService.LabelCounts(ctx, runID)
				if err != nil {
					return err
				}
				for _, c := range counts {
					fmt.Fprintf(out, "%s\t%d\n", c.Label, c.Count)
				}
				return nil
			}

			runs, err := historyService.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Fprintf(out, "%s\t%s\t%d\n", run.RunID, run.CreatedAt.UTC().Format(time.RFC3339), run.Total)
			}

			// 显示统计信息
			total, err := historyService.TotalResults(ctx)
			if err != nil {
				zap.S().Warnf("获取统计信息失败:%s", err.Error())
			} else {
				zap.S().Infof("DuckDB 中已保存的结果数量: %d", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	cmd.Flags().StringVar(&duckDBPath, "duckdb", "", "DuckDB 数据库路径，覆盖配置")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "最多列出的运行数量，0 表示全部")
	cmd.Flags().StringVar(&runID, "run", "", "只查看指定 run_id 的标签分布")
	return cmd
}
