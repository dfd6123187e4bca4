package cmd

import (
	"fmt"

	"social-sentiment/config"
	"social-sentiment/pkg/model"
	"social-sentiment/pkg/scorer"
	"social-sentiment/pkg/service"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func NewClassifyCommand() *cobra.Command {
	var fromText bool
	var precision int

	cmd := &cobra.Command{
		Use:   "classify <score|text>...",
		Short: "查看 compound 分数或文本对应的情感标签",
		Long:  "默认将参数解析为 compound 分数并输出对应标签；使用 --text 时先用 VADER 对参数文本打分。负数分数需放在 -- 之后，例如 classify -- -0.45",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !fromText {
				for _, arg := range args {
					score, err := cast.ToFloat64E(arg)
					if err != nil {
						return model.NewKindError(model.ErrConfig, err, "无法解析分数 %q", arg)
					}
					fmt.Fprintf(out, "%s\t%s\n", arg, service.Classify(score))
				}
				return nil
			}

			s, err := scorer.New(&config.ScorerConfig{Type: config.ScorerTypeVader, Precision: precision})
			if err != nil {
				return err
			}
			analyzer := service.NewSocialMediaAnalyzer(s)
			for _, text := range args {
				label, err := analyzer.AnalyzeText(text)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", text, label)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fromText, "text", "t", false, "将参数视为文本并先打分")
	cmd.Flags().IntVar(&precision, "precision", config.NewDefaultScorerConfig().Precision, "compound 保留的小数位数")
	return cmd
}
