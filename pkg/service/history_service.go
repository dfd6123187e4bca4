package service

import (
	"context"
	"database/sql"
	"fmt"

	"social-sentiment/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HistoryService 查询 DuckDB 中保存的历史运行结果
type HistoryService struct {
	db    *sql.DB
	table string
}

func NewHistoryService(db *sql.DB, table string) *HistoryService {
	return &HistoryService{db: db, table: table}
}

// ListRuns 按时间倒序列出最近的运行，limit <= 0 表示不限制
func (s *HistoryService) ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	exists, err := s.tableExists(ctx)
	if err != nil || !exists {
		return []model.RunSummary{}, err
	}

	query := fmt.Sprintf(`SELECT run_id, MIN(created_at) AS first_seen, COUNT(*) AS total
		FROM %s
		GROUP BY run_id
		ORDER BY first_seen DESC, run_id`, s.table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "查询运行记录失败")
	}
	defer rows.Close()

	runs := make([]model.RunSummary, 0)
	for rows.Next() {
		var run model.RunSummary
		if err := rows.Scan(&run.RunID, &run.CreatedAt, &run.Total); err != nil {
			return nil, errors.Wrapf(err, "扫描运行记录失败")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "读取运行记录失败")
	}
	return runs, nil
}

// LabelCounts 统计某次运行中各标签的数量，按标签从正到负排序
func (s *HistoryService) LabelCounts(ctx context.Context, runID string) ([]model.LabelCount, error) {
	exists, err := s.tableExists(ctx)
	if err != nil || !exists {
		return []model.LabelCount{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT label, COUNT(*) FROM %s WHERE run_id = ? GROUP BY label`, s.table), runID)
	if err != nil {
		return nil, errors.Wrapf(err, "查询运行 %s 的标签统计失败", runID)
	}
	defer rows.Close()

	byLabel := make(map[model.Label]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, errors.Wrapf(err, "扫描标签统计失败")
		}
		if !model.Label(label).Valid() {
			zap.S().Warnf("运行 %s 中存在未知标签 %q，忽略", runID, label)
			continue
		}
		byLabel[model.Label(label)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "读取标签统计失败")
	}

	counts := make([]model.LabelCount, 0, len(byLabel))
	for _, label := range model.AllLabels {
		if n, ok := byLabel[label]; ok {
			counts = append(counts, model.LabelCount{Label: label, Count: n})
		}
	}
	return counts, nil
}

// TotalResults 获取已保存的结果条数
func (s *HistoryService) TotalResults(ctx context.Context) (int64, error) {
	exists, err := s.tableExists(ctx)
	if err != nil || !exists {
		return 0, err
	}

	var count int64
	err = s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count)
	if err != nil {
		return 0, errors.Wrapf(err, "查询数量失败")
	}
	return count, nil
}

// tableExists 表不存在说明还没有写入过历史
func (s *HistoryService) tableExists(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, errors.New("DuckDB 连接未初始化")
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?`, s.table).Scan(&n)
	if err != nil {
		return false, errors.Wrapf(err, "检查表 %s 是否存在失败", s.table)
	}
	return n > 0, nil
}
