package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-sentiment/pkg/model"
	"social-sentiment/pkg/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SinkFailure 某个输出环节的失败记录
type SinkFailure struct {
	Sink string
	Err  error
}

func (f SinkFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Sink, f.Err)
}

func (f SinkFailure) Unwrap() error {
	return f.Err
}

// RunReport 一次运行的结果与各输出环节的执行情况
type RunReport struct {
	RunID     string
	Results   []model.Result
	Succeeded []string
	Failures  []SinkFailure
}

// Err 汇总所有输出失败，全部成功时返回 nil
func (r *RunReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

type SentimentApp struct {
	analyzer  *SocialMediaAnalyzer
	reporters []report.Reporter
}

// NewSentimentApp reporters 按传入顺序依次执行
func NewSentimentApp(analyzer *SocialMediaAnalyzer, reporters ...report.Reporter) *SentimentApp {
	return &SentimentApp{
		analyzer:  analyzer,
		reporters: reporters,
	}
}

// Run 读取输入、分类，并依次交给各输出环节
// 读取或打分失败时直接返回，不产生任何输出；输出环节的失败记录在 RunReport 中，不影响后续环节
func (s *SentimentApp) Run(ctx context.Context, inputPath string) (*RunReport, error) {
	startTime := time.Now()

	texts, err := LoadTexts(inputPath)
	if err != nil {
		return nil, err
	}
	zap.S().Infof("从 %s 读取到 %d 条文本", inputPath, len(texts))

	results, err := s.analyzer.AnalyzeTexts(ctx, texts)
	if err != nil {
		return nil, err
	}

	runReport := &RunReport{
		RunID:   uuid.NewString(),
		Results: results,
	}
	ctx = report.WithRunID(ctx, runReport.RunID)

	for _, r := range s.reporters {
		if err := ctx.Err(); err != nil {
			return runReport, err
		}
		if err := r.Report(ctx, results); err != nil {
			zap.S().Errorf("输出环节 %s 失败: %v", r.Name(), err)
			runReport.Failures = append(runReport.Failures, SinkFailure{Sink: r.Name(), Err: err})
			continue
		}
		runReport.Succeeded = append(runReport.Succeeded, r.Name())
	}

	zap.S().Infof("处理完成: 成功 %d 个输出, 失败 %d 个输出", len(runReport.Succeeded), len(runReport.Failures))
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return runReport, nil
}
