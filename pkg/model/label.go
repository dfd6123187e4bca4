package model

// Label 情感分类标签，取值固定为七档
type Label string

const (
	LabelExtremelyPositive Label = "Extremely Positive"
	LabelVeryPositive      Label = "Very Positive"
	LabelPositive          Label = "Positive"
	LabelNeutral           Label = "Neutral"
	LabelNegative          Label = "Negative"
	LabelVeryNegative      Label = "Very Negative"
	LabelExtremelyNegative Label = "Extremely Negative"
)

// AllLabels 按从最正面到最负面的顺序列出全部标签
var AllLabels = []Label{
	LabelExtremelyPositive,
	LabelVeryPositive,
	LabelPositive,
	LabelNeutral,
	LabelNegative,
	LabelVeryNegative,
	LabelExtremelyNegative,
}

func (l Label) String() string {
	return string(l)
}

// Valid 判断标签是否属于七档之一
func (l Label) Valid() bool {
	for _, label := range AllLabels {
		if l == label {
			return true
		}
	}
	return false
}
