package report

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"social-sentiment/pkg/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

const (
	ChartTitle  = "Sentiment Distribution"
	ChartXLabel = "Sentiment"
	ChartYLabel = "Count"
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// ChartSpec 与渲染后端无关的柱状图描述
type ChartSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Values     []int
}

// NewChartSpec 按标签首次出现的顺序生成分布图描述
func NewChartSpec(results []model.Result) ChartSpec {
	counts := model.Tally(results)
	spec := ChartSpec{
		Title:      ChartTitle,
		XLabel:     ChartXLabel,
		YLabel:     ChartYLabel,
		Categories: make([]string, 0, len(counts)),
		Values:     make([]int, 0, len(counts)),
	}
	for _, c := range counts {
		spec.Categories = append(spec.Categories, c.Label.String())
		spec.Values = append(spec.Values, c.Count)
	}
	return spec
}

// ChartReporter 将分布图渲染为文件，格式由扩展名决定
type ChartReporter struct {
	path   string
	width  int
	height int
}

func NewChartReporter(path string, width, height int) *ChartReporter {
	return &ChartReporter{path: path, width: width, height: height}
}

func (c *ChartReporter) Name() string {
	return "chart"
}

func (c *ChartReporter) Report(ctx context.Context, results []model.Result) error {
	spec := NewChartSpec(results)
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(c.path)), ".")

	var wt io.WriterTo
	var err error
	if format == "html" {
		wt = c.renderHTML(spec)
	} else {
		wt, err = c.renderPlot(spec, format)
		if err != nil {
			return model.NewKindError(model.ErrRender, err, "渲染分布图 %s 失败", c.path)
		}
	}

	file, err := os.Create(c.path)
	if err != nil {
		return model.NewKindError(model.ErrRender, err, "创建图表文件 %s 失败", c.path)
	}
	defer file.Close()
	if _, err := wt.WriteTo(file); err != nil {
		return model.NewKindError(model.ErrRender, err, "写出分布图 %s 失败", c.path)
	}
	if err := file.Close(); err != nil {
		return model.NewKindError(model.ErrRender, err, "关闭图表文件 %s 失败", c.path)
	}
	zap.S().Infof("分布图已保存到 %s", c.path)
	return nil
}

// renderPlot 使用 gonum/plot 绘制静态图片
func (c *ChartReporter) renderPlot(spec ChartSpec, format string) (io.WriterTo, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Y.Min = 0

	if len(spec.Values) > 0 {
		values := make(plotter.Values, len(spec.Values))
		for i, v := range spec.Values {
			values[i] = float64(v)
		}
		bars, err := plotter.NewBarChart(values, vg.Points(40))
		if err != nil {
			return nil, err
		}
		bars.Color = barColor
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalX(spec.Categories...)
	}

	return p.WriterTo(pixels(c.width), pixels(c.height), format)
}

// renderHTML 使用 go-echarts 生成可交互的网页
func (c *ChartReporter) renderHTML(spec ChartSpec) io.WriterTo {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     fmt.Sprintf("%dpx", c.width),
			Height:    fmt.Sprintf("%dpx", c.height),
		}),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel}),
	)

	data := make([]opts.BarData, 0, len(spec.Values))
	for i, v := range spec.Values {
		data = append(data, opts.BarData{Name: spec.Categories[i], Value: v})
	}
	bar.SetXAxis(spec.Categories).AddSeries(spec.YLabel, data)
	return writerToFunc(bar.Render)
}

type writerToFunc func(w io.Writer) error

func (f writerToFunc) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := f(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// pixels 按 96 DPI 将像素换算为绘图长度
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}
