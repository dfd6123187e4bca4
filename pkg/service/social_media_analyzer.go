package service

import (
	"context"

	"social-sentiment/pkg/model"
	"social-sentiment/pkg/scorer"

	"go.uber.org/zap"
)

type SocialMediaAnalyzer struct {
	scorer scorer.Scorer
}

func NewSocialMediaAnalyzer(s scorer.Scorer) *SocialMediaAnalyzer {
	return &SocialMediaAnalyzer{
		scorer: s,
	}
}

// AnalyzeText 对单条文本打分并分类
func (a *SocialMediaAnalyzer) AnalyzeText(text string) (model.Label, error) {
	score, err := a.scorer.Score(text)
	if err != nil {
		return "", model.NewKindError(model.ErrScoring, err, "文本打分失败: %q", text)
	}
	label := Classify(score)
	zap.S().Debugf("score=%.4f label=%s text=%q", score, label, text)
	return label, nil
}

// AnalyzeTexts 逐条分类，结果与输入一一对应、顺序一致
// 任一文本打分失败即中止，不返回部分结果
func (a *SocialMediaAnalyzer) AnalyzeTexts(ctx context.Context, texts []string) ([]model.Result, error) {
	results := make([]model.Result, 0, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := a.scorer.Score(text)
		if err != nil {
			return nil, model.NewKindError(model.ErrScoring, err, "第 %d 行打分失败", i+1)
		}
		label := Classify(score)
		zap.S().Debugf("第 %d 行: score=%.4f label=%s", i+1, score, label)
		results = append(results, model.Result{Text: text, Label: label})
	}
	return results, nil
}
