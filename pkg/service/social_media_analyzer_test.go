package service

import (
	"context"
	"testing"

	"social-sentiment/pkg/model"
	"social-sentiment/pkg/scorer"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedScorer 按文本返回预设分数，未登记的文本返回 0
func fixedScorer(scores map[string]float64) scorer.Scorer {
	return scorer.Func(func(text string) (float64, error) {
		return scores[text], nil
	})
}

func TestSocialMediaAnalyzer_AnalyzeTexts(t *testing.T) {
	analyzer := NewSocialMediaAnalyzer(fixedScorer(map[string]float64{
		"I love this!":  0.65,
		"meh":           0.05,
		"not great":     -0.2,
		"awful":         -0.8,
		"pretty decent": 0.15,
	}))
	texts := []string{"I love this!", "meh", "not great", "awful", "pretty decent", "a table", "meh"}

	results, err := analyzer.AnalyzeTexts(context.Background(), texts)
	require.NoError(t, err)

	require.Len(t, results, len(texts))
	for i, r := range results {
		assert.Equal(t, texts[i], r.Text)
	}
	assert.Equal(t, []model.Label{
		model.LabelExtremelyPositive,
		model.LabelPositive,
		model.LabelVeryNegative,
		model.LabelExtremelyNegative,
		model.LabelVeryPositive,
		model.LabelNeutral,
		model.LabelPositive,
	}, labelsOf(results))
}

func TestSocialMediaAnalyzer_Empty(t *testing.T) {
	analyzer := NewSocialMediaAnalyzer(fixedScorer(nil))

	results, err := analyzer.AnalyzeTexts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSocialMediaAnalyzer_ScoringFailure(t *testing.T) {
	boom := errors.New("lexicon unavailable")
	calls := 0
	analyzer := NewSocialMediaAnalyzer(scorer.Func(func(text string) (float64, error) {
		calls++
		if text == "bad" {
			return 0, boom
		}
		return 0.5, nil
	}))

	results, err := analyzer.AnalyzeTexts(context.Background(), []string{"ok", "bad", "never scored"})

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, model.ErrScoring))
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "第 2 行")
	assert.Equal(t, 2, calls)
}

func TestSocialMediaAnalyzer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	analyzer := NewSocialMediaAnalyzer(fixedScorer(nil))

	_, err := analyzer.AnalyzeTexts(ctx, []string{"a"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSocialMediaAnalyzer_AnalyzeText(t *testing.T) {
	analyzer := NewSocialMediaAnalyzer(fixedScorer(map[string]float64{"sad": -0.05}))

	label, err := analyzer.AnalyzeText("sad")
	require.NoError(t, err)
	assert.Equal(t, model.LabelNegative, label)
}

func labelsOf(results []model.Result) []model.Label {
	labels := make([]model.Label, 0, len(results))
	for _, r := range results {
		labels = append(labels, r.Label)
	}
	return labels
}
