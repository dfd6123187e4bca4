package report

import (
	"context"
	"fmt"

	"social-sentiment/pkg/model"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	resultsSheet      = "Results"
	distributionSheet = "Distribution"
)

// WorkbookReporter 生成 xlsx 报表：结果明细 + 分布统计及柱状图
type WorkbookReporter struct {
	path string
}

func NewWorkbookReporter(path string) *WorkbookReporter {
	return &WorkbookReporter{path: path}
}

func (wr *WorkbookReporter) Name() string {
	return "workbook"
}

func (wr *WorkbookReporter) Report(ctx context.Context, results []model.Result) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.S().Warnf("关闭报表失败: %v", err)
		}
	}()

	if err := wr.fillResults(f, results); err != nil {
		return model.NewKindError(model.ErrWrite, err, "生成结果明细失败")
	}
	if err := wr.fillDistribution(f, model.Tally(results)); err != nil {
		return model.NewKindError(model.ErrWrite, err, "生成分布统计失败")
	}
	if err := f.SaveAs(wr.path); err != nil {
		return model.NewKindError(model.ErrWrite, err, "保存报表 %s 失败", wr.path)
	}
	zap.S().Infof("报表已保存到 %s", wr.path)
	return nil
}

func (wr *WorkbookReporter) fillResults(f *excelize.File, results []model.Result) error {
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &[]interface{}{"Text", "Sentiment"}); err != nil {
		return err
	}
	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &[]interface{}{r.Text, r.Label.String()}); err != nil {
			return err
		}
	}
	return nil
}

func (wr *WorkbookReporter) fillDistribution(f *excelize.File, counts []model.LabelCount) error {
	if _, err := f.NewSheet(distributionSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(distributionSheet, "A1", &[]interface{}{ChartXLabel, ChartYLabel}); err != nil {
		return err
	}
	for i, c := range counts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(distributionSheet, cell, &[]interface{}{c.Label.String(), c.Count}); err != nil {
			return err
		}
	}
	if len(counts) == 0 {
		return nil
	}

	last := len(counts) + 1
	return f.AddChart(distributionSheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", distributionSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", distributionSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", distributionSheet, last),
			},
		},
		Title: []excelize.RichTextRun{{Text: ChartTitle}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ChartXLabel}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ChartYLabel}}},
	})
}
