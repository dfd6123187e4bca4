package config

import (
	"github.com/pkg/errors"
)

const ScorerTypeVader = "vader"

type ScorerConfig struct {
	Type      string `json:"type" yaml:"type"`           // 打分器类型，目前只有 vader
	Precision int    `json:"precision" yaml:"precision"` // compound 保留的小数位数
}

func (s *ScorerConfig) Validate() []error {
	var errs = make([]error, 0)
	if s.Type != ScorerTypeVader {
		errs = append(errs, errors.Errorf("不支持的打分器类型: %q", s.Type))
	}
	if s.Precision < 0 || s.Precision > 15 {
		errs = append(errs, errors.Errorf("打分精度超出范围: %d", s.Precision))
	}
	return errs
}

func NewDefaultScorerConfig() *ScorerConfig {
	return &ScorerConfig{
		Type:      ScorerTypeVader,
		Precision: 4,
	}
}
