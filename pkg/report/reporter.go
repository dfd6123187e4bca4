package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"social-sentiment/pkg/model"
)

// Separator 每条结果之后的分隔线，20 个短横线
var Separator = strings.Repeat("-", 20)

// Reporter 消费完整的分类结果，各实现之间互不共享可变状态
type Reporter interface {
	Name() string
	Report(ctx context.Context, results []model.Result) error
}

type runIDKey struct{}

// WithRunID 将本次运行的 ID 放入 context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext 取出运行 ID，没有时返回空字符串
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WriteResults 按 "Text / Sentiment / 分隔线" 三行一组写出结果
func WriteResults(w io.Writer, results []model.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "Text: %s\nSentiment: %s\n%s\n", r.Text, r.Label, Separator); err != nil {
			return err
		}
	}
	return nil
}
