package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"social-sentiment/pkg/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DuckDBReporter 将每次运行的结果追加到 DuckDB 表中，便于跨运行查询
type DuckDBReporter struct {
	db    *sql.DB
	table string
}

func NewDuckDBReporter(db *sql.DB, table string) *DuckDBReporter {
	return &DuckDBReporter{db: db, table: table}
}

func (d *DuckDBReporter) Name() string {
	return "duckdb"
}

func (d *DuckDBReporter) Report(ctx context.Context, results []model.Result) error {
	if d.db == nil {
		return model.NewKindError(model.ErrWrite, nil, "DuckDB 连接未初始化")
	}
	if err := d.createTable(ctx); err != nil {
		return model.NewKindError(model.ErrWrite, err, "创建表 %s 失败", d.table)
	}

	runID := RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	createdAt := time.Now().UTC()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return model.NewKindError(model.ErrWrite, err, "开启事务失败")
	}
	defer tx.Rollback()

	insertSQL := fmt.Sprintf(`INSERT INTO %s (run_id, seq, text, label, created_at) VALUES (?, ?, ?, ?, ?)`, d.table)
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return model.NewKindError(model.ErrWrite, err, "准备插入语句失败")
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx, runID, i, r.Text, r.Label.String(), createdAt); err != nil {
			return model.NewKindError(model.ErrWrite, err, "插入第 %d 条结果失败", i+1)
		}
	}
	if err := tx.Commit(); err != nil {
		return model.NewKindError(model.ErrWrite, err, "提交事务失败")
	}

	zap.S().Infof("已写入 %d 条结果到 DuckDB 表 %s (run_id=%s)", len(results), d.table, runID)
	return nil
}

func (d *DuckDBReporter) createTable(ctx context.Context) error {
	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id TEXT,
			seq INTEGER,
			text TEXT,
			label TEXT,
			created_at TIMESTAMP
		)
	`, d.table)
	_, err := d.db.ExecContext(ctx, createTableSQL)
	return err
}
