package scorer

import (
	"math"

	"social-sentiment/config"
	"social-sentiment/pkg/model"

	"github.com/jonreiter/govader"
	"github.com/pkg/errors"
)

// Scorer 给出文本的 compound 极性分数，取值 [-1, 1]
type Scorer interface {
	Score(text string) (float64, error)
}

// Func 将普通函数适配为 Scorer
type Func func(text string) (float64, error)

func (f Func) Score(text string) (float64, error) {
	return f(text)
}

// New 按配置创建打分器
func New(cfg *config.ScorerConfig) (Scorer, error) {
	if cfg == nil {
		cfg = config.NewDefaultScorerConfig()
	}
	switch cfg.Type {
	case config.ScorerTypeVader:
		return NewVader(cfg), nil
	default:
		return nil, model.NewKindError(model.ErrConfig, nil, "不支持的打分器类型 %q", cfg.Type)
	}
}

// VaderScorer 基于 VADER 词典的打分器
type VaderScorer struct {
	analyzer  *govader.SentimentIntensityAnalyzer
	precision int
}

func NewVader(cfg *config.ScorerConfig) *VaderScorer {
	return &VaderScorer{
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
		precision: cfg.Precision,
	}
}

// Score 返回按精度四舍五入后的 compound 分数
func (v *VaderScorer) Score(text string) (float64, error) {
	compound := v.analyzer.PolarityScores(text).Compound
	if math.IsNaN(compound) || math.IsInf(compound, 0) {
		return 0, errors.Wrapf(model.ErrScoring, "compound 分数无效: %v", compound)
	}
	return Round(compound, v.precision), nil
}

// Round 保留 precision 位小数
func Round(value float64, precision int) float64 {
	if precision < 0 {
		return value
	}
	p := math.Pow10(precision)
	return math.Round(value*p) / p
}
