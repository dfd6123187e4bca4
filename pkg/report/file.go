package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"social-sentiment/pkg/model"

	"go.uber.org/zap"
)

// FileReporter 将结果写入纯文本文件，每次运行覆盖原文件
type FileReporter struct {
	path string
	out  io.Writer // 写完后在此输出保存提示
}

func NewFileReporter(path string, out io.Writer) *FileReporter {
	return &FileReporter{path: path, out: out}
}

func (f *FileReporter) Name() string {
	return "file"
}

func (f *FileReporter) Report(ctx context.Context, results []model.Result) error {
	file, err := os.Create(f.path)
	if err != nil {
		return model.NewKindError(model.ErrWrite, err, "创建结果文件 %s 失败", f.path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := WriteResults(w, results); err != nil {
		return model.NewKindError(model.ErrWrite, err, "写入结果文件 %s 失败", f.path)
	}
	if err := w.Flush(); err != nil {
		return model.NewKindError(model.ErrWrite, err, "写入结果文件 %s 失败", f.path)
	}
	if err := file.Close(); err != nil {
		return model.NewKindError(model.ErrWrite, err, "关闭结果文件 %s 失败", f.path)
	}

	zap.S().Debugf("已写入 %d 条结果到 %s", len(results), f.path)
	if f.out != nil {
		fmt.Fprintf(f.out, "Sentiment results saved to %s\n", f.path)
	}
	return nil
}
