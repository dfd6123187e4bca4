package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// 支持的图表产物格式
var chartFormats = map[string]struct{}{
	".png": {}, ".svg": {}, ".pdf": {}, ".jpg": {}, ".jpeg": {},
	".tif": {}, ".tiff": {}, ".eps": {}, ".html": {},
}

type InputConfig struct {
	Path string `json:"path" yaml:"path"` // 待分析文本，一行一条
}

func (i *InputConfig) Validate() []error {
	var errs = make([]error, 0)
	if strings.TrimSpace(i.Path) == "" {
		errs = append(errs, errors.Errorf("输入文件路径不能为空"))
	}
	return errs
}

func NewDefaultInputConfig() *InputConfig {
	return &InputConfig{
		Path: "social_media_texts.txt",
	}
}

type OutputConfig struct {
	ResultsPath  string `json:"resultsPath" yaml:"resultsPath"`   // 文本结果文件，每次运行覆盖
	ChartPath    string `json:"chartPath" yaml:"chartPath"`       // 分布图产物，为空时不生成
	ChartWidth   int    `json:"chartWidth" yaml:"chartWidth"`     // 像素
	ChartHeight  int    `json:"chartHeight" yaml:"chartHeight"`   // 像素
	WorkbookPath string `json:"workbookPath" yaml:"workbookPath"` // xlsx 报表，为空时不生成
}

func (o *OutputConfig) Validate() []error {
	var errs = make([]error, 0)
	if strings.TrimSpace(o.ResultsPath) == "" {
		errs = append(errs, errors.Errorf("结果文件路径不能为空"))
	}
	if o.ChartPath != "" {
		ext := strings.ToLower(filepath.Ext(o.ChartPath))
		if _, ok := chartFormats[ext]; !ok {
			errs = append(errs, errors.Errorf("不支持的图表格式: %q", ext))
		}
		if o.ChartWidth <= 0 || o.ChartHeight <= 0 {
			errs = append(errs, errors.Errorf("图表尺寸必须为正数: %dx%d", o.ChartWidth, o.ChartHeight))
		}
	}
	if o.WorkbookPath != "" && strings.ToLower(filepath.Ext(o.WorkbookPath)) != ".xlsx" {
		errs = append(errs, errors.Errorf("报表文件必须为 .xlsx: %s", o.WorkbookPath))
	}
	return errs
}

func NewDefaultOutputConfig() *OutputConfig {
	return &OutputConfig{
		ResultsPath: "sentiment_results.txt",
		ChartPath:   "sentiment_distribution.png",
		ChartWidth:  800,
		ChartHeight: 500,
	}
}
