package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type IConfig interface {
	Validate() []error
}

var (
	_ IConfig = (*GlobalConfig)(nil)
	_ IConfig = (*InputConfig)(nil)
	_ IConfig = (*OutputConfig)(nil)
	_ IConfig = (*ScorerConfig)(nil)
	_ IConfig = (*DuckDBConfig)(nil)
)

type GlobalConfig struct {
	InputConfig  *InputConfig  `json:"input" yaml:"input"`
	OutputConfig *OutputConfig `json:"output" yaml:"output"`
	ScorerConfig *ScorerConfig `json:"scorer" yaml:"scorer"`
	DuckDBConfig *DuckDBConfig `json:"duckdb" yaml:"duckdb"` // 为空时不写入 DuckDB
}

func (g *GlobalConfig) Validate() []error {
	var errs = make([]error, 0)
	if g.InputConfig == nil {
		errs = append(errs, errors.Errorf("未配置输入文件"))
	} else if es := g.InputConfig.Validate(); len(es) > 0 {
		errs = append(errs, es...)
	}
	if g.OutputConfig == nil {
		errs = append(errs, errors.Errorf("未配置输出文件"))
	} else if es := g.OutputConfig.Validate(); len(es) > 0 {
		errs = append(errs, es...)
	}
	if g.ScorerConfig == nil {
		errs = append(errs, errors.Errorf("未配置打分器"))
	} else if es := g.ScorerConfig.Validate(); len(es) > 0 {
		errs = append(errs, es...)
	}
	if g.DuckDBConfig.Enabled() {
		if es := g.DuckDBConfig.Validate(); len(es) > 0 {
			errs = append(errs, es...)
		}
	}
	return errs
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		InputConfig:  NewDefaultInputConfig(),
		OutputConfig: NewDefaultOutputConfig(),
		ScorerConfig: NewDefaultScorerConfig(),
	}
}

// LoadOrDefault 读取配置文件；文件不存在且未显式指定时使用默认配置
func LoadOrDefault(configFilePath string, explicit bool) (*GlobalConfig, error) {
	cfg, err := TryLoadFromDisk(configFilePath)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return NewDefaultGlobalConfig(), nil
	}
	return nil, err
}

func TryLoadFromDisk(configFilePath string) (*GlobalConfig, error) {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return nil, err
	}
	dir, file := filepath.Split(configFilePath)
	fileType := strings.TrimPrefix(filepath.Ext(file), ".")
	if fileType == "yml" {
		fileType = "yaml"
	}
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(file, filepath.Ext(file)))
	v.SetConfigType(fileType)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		return nil, errors.Errorf("解析配置文件错误:%s", err.Error())
	}
	cfg := NewDefaultGlobalConfig()
	if err := v.Unmarshal(cfg, func(config *mapstructure.DecoderConfig) {
		config.TagName = fileType
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}
