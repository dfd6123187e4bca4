package cmd

import (
	"social-sentiment/pkg/util"

	"github.com/spf13/cobra"
)

// NewRootCommand 不带子命令时按默认配置直接执行分析，与 analyze 相同
func NewRootCommand() *cobra.Command {
	var logLevel string
	o := &analyzeOptions{}

	rootCmd := &cobra.Command{
		Use:   "social-sentiment",
		Short: "社交媒体文本情感分布分析工具",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		Args:          cobra.NoArgs,
		RunE:          o.run,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return util.SetupLogger(logLevel)
		},
	}

	o.addFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "日志级别 (debug, info, warn, error)")

	// 添加子命令
	rootCmd.AddCommand(NewAnalyzeCommand())
	rootCmd.AddCommand(NewClassifyCommand())
	rootCmd.AddCommand(NewHistoryCommand())

	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}
