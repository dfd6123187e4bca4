package service

import (
	"os"
	"strings"

	"social-sentiment/pkg/model"

	"github.com/pkg/errors"
)

// LoadTexts 读取输入文件，去掉首尾空白并丢弃空行，保持原有顺序
func LoadTexts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.NewKindError(model.ErrInputNotFound, err, "输入文件不存在: %s", path)
		}
		return nil, errors.Wrapf(err, "读取输入文件 %s 失败", path)
	}

	lines := strings.Split(string(data), "\n")
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		if text := strings.TrimSpace(line); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}
