package model

import "time"

// RunSummary 一次 analyze 运行在 DuckDB 中的汇总
type RunSummary struct {
	RunID     string    `json:"run_id"`     // 运行 ID (uuid)
	CreatedAt time.Time `json:"created_at"` // 写入时间 (UTC)
	Total     int       `json:"total"`      // 本次运行的结果条数
}
