package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type DuckDBConfig struct {
	DBPath string `json:"dbPath" yaml:"dbPath"` // DuckDB 数据库文件路径
	Table  string `json:"table" yaml:"table"`   // 分析结果表名
}

// Enabled 配置了数据库路径才写入 DuckDB
func (d *DuckDBConfig) Enabled() bool {
	return d != nil && d.DBPath != ""
}

func (d *DuckDBConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.DBPath == "" {
		errs = append(errs, errors.Errorf("DuckDB 数据库路径不能为空"))
		return errs
	}
	if !tableNamePattern.MatchString(d.TableName()) {
		errs = append(errs, errors.Errorf("DuckDB 表名不合法: %q", d.Table))
	}

	// 确保目录存在
	dir := filepath.Dir(d.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		errs = append(errs, errors.Errorf("创建 DuckDB 目录失败: %v", err))
	}

	return errs
}

func NewDefaultDuckDBConfig() *DuckDBConfig {
	return &DuckDBConfig{
		DBPath: "./data/sentiment.duckdb",
		Table:  "sentiment_results",
	}
}

// TableName 未配置表名时使用 sentiment_results
func (d *DuckDBConfig) TableName() string {
	if d.Table == "" {
		return "sentiment_results"
	}
	return d.Table
}

func (d *DuckDBConfig) DSN() string {
	return d.DBPath
}
