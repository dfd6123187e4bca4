package report

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"social-sentiment/pkg/model"
)

type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (c *ConsoleReporter) Name() string {
	return "console"
}

func (c *ConsoleReporter) Report(ctx context.Context, results []model.Result) error {
	w := bufio.NewWriter(c.out)
	if _, err := fmt.Fprintln(w, "Sentiment Analysis Results:"); err != nil {
		return model.NewKindError(model.ErrWrite, err, "输出到控制台失败")
	}
	if err := WriteResults(w, results); err != nil {
		return model.NewKindError(model.ErrWrite, err, "输出到控制台失败")
	}
	if err := w.Flush(); err != nil {
		return model.NewKindError(model.ErrWrite, err, "输出到控制台失败")
	}
	return nil
}
