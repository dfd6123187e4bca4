package model

// Result 单条文本的分类结果，顺序与输入文件一致
type Result struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// LabelCount 某个标签出现的次数
type LabelCount struct {
	Label Label `json:"label"`
	Count int   `json:"count"`
}

// Tally 统计各标签的出现次数，按标签首次出现的顺序返回
func Tally(results []Result) []LabelCount {
	counts := make([]LabelCount, 0, len(AllLabels))
	index := make(map[Label]int, len(AllLabels))
	for _, r := range results {
		i, ok := index[r.Label]
		if !ok {
			i = len(counts)
			index[r.Label] = i
			counts = append(counts, LabelCount{Label: r.Label})
		}
		counts[i].Count++
	}
	return counts
}
