package service

import (
	"social-sentiment/pkg/model"
)

// Classify 将 compound 分数映射为七档标签
// 按从上到下的顺序判断，命中即返回；边界值归入更强的一档（0.3 为 Extremely Positive）
// NaN 不满足任何比较，落入 Neutral
func Classify(score float64) model.Label {
	if score >= 0.3 {
		return model.LabelExtremelyPositive
	} else if score >= 0.1 {
		return model.LabelVeryPositive
	} else if score > 0 {
		return model.LabelPositive
	} else if score <= -0.3 {
		return model.LabelExtremelyNegative
	} else if score <= -0.1 {
		return model.LabelVeryNegative
	} else if score < 0 {
		return model.LabelNegative
	}
	return model.LabelNeutral
}
