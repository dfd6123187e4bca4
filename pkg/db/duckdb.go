package db

import (
	"context"
	"database/sql"
	"sync"

	"social-sentiment/config"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// OpenDuckDB 打开 DuckDB 数据库文件并测试连接
func OpenDuckDB(ctx context.Context, cfg *config.DuckDBConfig) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", cfg.DSN())
	if err != nil {
		return nil, errors.Wrapf(err, "连接 duckdb %s 失败", cfg.DSN())
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "duckdb %s 连接测试失败", cfg.DSN())
	}
	return conn, nil
}

// InitDuckDB 初始化进程内共享的 duckdb 连接
func InitDuckDB(ctx context.Context, cfg *config.DuckDBConfig) error {
	var err error
	duckDBOnce.Do(func() {
		duckDB, err = OpenDuckDB(ctx, cfg)
		if err != nil {
			zap.S().Errorf("初始化 duckdb 失败: %v", err)
			return
		}
		zap.S().Debug("duckdb 初始化完成...")
	})
	if err == nil && duckDB == nil {
		err = errors.New("duckdb 初始化失败，需先 CloseDuckDB 再重试")
	}
	return err
}

// GetDuckDB 获取 DuckDB 连接
func GetDuckDB() *sql.DB {
	return duckDB
}

// CloseDuckDB 关闭共享连接，之后可以重新 InitDuckDB
func CloseDuckDB() error {
	defer func() {
		duckDB = nil
		duckDBOnce = sync.Once{}
	}()
	if duckDB == nil {
		return nil
	}
	return duckDB.Close()
}
